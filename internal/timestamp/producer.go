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

package timestamp

import (
	"fmt"
	"sync"
	"time"

	"github.com/nabbar/aesdsocket/internal/logstore"

	libdur "github.com/nabbar/aesdsocket/internal/duration"
)

// rfc2822 mirrors the layout named in the distilled spec: "Mon, 02 Jan 2006
// 15:04:05 -0700".
const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

type producer struct {
	store    logstore.Store
	interval libdur.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}

	onError func(error)
}

// OnError installs a callback invoked, from the producer's own goroutine,
// whenever an append fails. It must be set before Start; nil disables
// reporting.
func (p *producer) OnError(fn func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.onError = fn
}

func (p *producer) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.running = true
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go p.run(p.stop, p.done)
}

func (p *producer) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}

	p.running = false
	stop, done := p.stop, p.done
	p.mu.Unlock()

	close(stop)
	<-done
}

func (p *producer) run(stop, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(p.interval.Time())
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			record := []byte(fmt.Sprintf("timestamp:%s\n", now.Format(rfc2822)))

			if e := p.store.Append(record); e != nil {
				p.mu.Lock()
				cb := p.onError
				p.mu.Unlock()

				if cb != nil {
					cb(ErrorAppend.Error(e))
				}
			}
		}
	}
}
