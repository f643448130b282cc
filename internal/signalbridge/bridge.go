/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package signalbridge translates asynchronous OS termination signals into
// the process-wide shutdown flag and forces the listening socket out of a
// blocking Accept. No other work happens in signal context; everything else
// runs on the supervisor's own goroutine once it observes the flag.
package signalbridge

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	libatm "github.com/nabbar/aesdsocket/internal/atomic"
)

// Bridge owns the signal.Notify registration for the lifetime of the
// process.
type Bridge interface {
	// Listen installs the signal handler, bound to the given listener. It
	// returns immediately; the handler runs in its own goroutine.
	Listen(l net.Listener)

	// Stop unregisters the signal handler without touching the shutdown
	// flag. Used by tests and by graceful shutdowns not triggered by a
	// signal.
	Stop()
}

// New returns a Bridge that sets flag and shuts down the registered
// listener when SIGINT or SIGTERM arrives.
func New(flag libatm.Value[bool]) Bridge {
	return &bridge{flag: flag}
}

type bridge struct {
	flag libatm.Value[bool]
	ch   chan os.Signal
}

func (b *bridge) Listen(l net.Listener) {
	b.ch = make(chan os.Signal, 1)

	signal.Notify(b.ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-b.ch; !ok {
			return
		}

		b.flag.Store(true)
		_ = l.Close()
	}()
}

func (b *bridge) Stop() {
	if b.ch != nil {
		signal.Stop(b.ch)
		close(b.ch)
	}
}
