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

// Package timestamp periodically writes a "timestamp:<RFC-2822-date>\n"
// record into the shared log store. It is the only producer besides the
// connection workers, and uses the same append call they do.
package timestamp

import (
	"github.com/nabbar/aesdsocket/internal/logstore"

	libdur "github.com/nabbar/aesdsocket/internal/duration"
)

// Producer fires on a fixed interval, appending one timestamp record per
// firing, until Stop is called.
type Producer interface {
	// OnError installs a callback invoked whenever an append fails. Must be
	// called before Start to take effect for the first firing.
	OnError(fn func(error))

	// Start begins firing every interval in a background goroutine. The
	// first firing happens one interval after Start returns, not
	// immediately. Calling Start twice is a no-op.
	Start()

	// Stop halts future firings and blocks until the background goroutine
	// has exited. Calling Stop before Start, or twice, is a no-op.
	Stop()
}

// New returns a Producer that appends to store every interval.
func New(store logstore.Store, interval libdur.Duration) Producer {
	return &producer{
		store:    store,
		interval: interval,
	}
}
