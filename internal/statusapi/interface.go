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

// Package statusapi exposes the optional HTTP admin surface described by the
// status address configuration: a liveness probe, a Prometheus exposition
// endpoint and a JSON status snapshot. It is never required for the socket
// server itself to function and is only started when a status address is
// configured.
package statusapi

import (
	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"
	"github.com/nabbar/aesdsocket/internal/registry"
)

// ConnStats is the subset of the worker Registry the status surface needs.
// Accepting this instead of registry.Registry[T] lets the caller pass a
// registry instantiated over any handle type without this package needing
// the matching type parameter.
type ConnStats interface {
	Counters() registry.Counters
}

// Server is the status surface's lifecycle contract. It satisfies the
// unexported stoppable interface the supervisor drains against, so the
// supervisor never imports this package directly.
type Server interface {
	// Start begins serving in a background goroutine and returns once the
	// listener is bound, or with an error if binding failed.
	Start() error

	// Stop gracefully shuts the HTTP server down, waiting for in-flight
	// requests to finish up to an internal deadline.
	Stop()

	// Addr returns the address the listener actually bound to, which may
	// differ from the configured one when a ":0" ephemeral port was used.
	// It is empty until Start has returned successfully.
	Addr() string
}

// New returns a Server bound to addr. running is polled on every /healthz
// request to decide whether the accept loop is still alive.
func New(addr string, store logstore.Store, conns ConnStats, running func() bool, log diag.Logger) Server {
	return &server{
		addr:    addr,
		store:   store,
		conns:   conns,
		running: running,
		log:     log,
	}
}
