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

// Package session implements the per-connection worker: it owns one
// transport, reads bytes into a hand-rolled elastic buffer, splits the
// buffer on newline, and for every complete record appends it to the log
// store and immediately streams the whole store back to the same peer.
//
// Buffer growth is deliberately not delegated to bufio.Scanner or any
// buffered-reader wrapper: record size is unbounded by design, and the
// framing logic is the load-bearing part of this package.
package session

import (
	"net"

	libatm "github.com/nabbar/aesdsocket/internal/atomic"
	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"
)

// Worker drives one client connection to completion.
type Worker interface {
	// Run blocks until the peer closes the connection, a fatal I/O error
	// occurs, or shutdown is requested. It never closes conn; the caller
	// (the supervisor) owns that.
	Run()
}

// New returns a Worker for conn, appending/streaming through store, and
// observing the process-wide shutdown flag between records.
func New(conn net.Conn, store logstore.Store, shutdown libatm.Value[bool], log diag.Logger) Worker {
	return &worker{
		conn:     conn,
		store:    store,
		shutdown: shutdown,
		log:      log,
	}
}
