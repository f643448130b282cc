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

// Package supervisor owns the listening socket and the worker registry. It
// drives the accept loop, opportunistically reaps finished workers, and
// orchestrates the shutdown drain sequence once the shutdown flag is set.
package supervisor

import (
	"net"

	libatm "github.com/nabbar/aesdsocket/internal/atomic"
	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"
	"github.com/nabbar/aesdsocket/internal/registry"
	"github.com/nabbar/aesdsocket/internal/session"
)

// stoppable is satisfied by both timestamp.Producer and statusapi.Server
// without importing either package, avoiding a dependency cycle: the
// supervisor only needs to stop them in a specific order during drain.
type stoppable interface {
	Stop()
}

type conn struct {
	c    net.Conn
	done chan struct{}
}

// Supervisor drives the accept loop to completion.
type Supervisor interface {
	// Run blocks, accepting connections and spawning workers, until the
	// shutdown flag is observed, then drains in-flight workers, closes the
	// listener, and purges the log store. It returns after the log store
	// has been purged.
	Run()

	// Counters reports a snapshot of the worker registry, satisfying
	// statusapi.ConnStats without this package importing statusapi.
	Counters() registry.Counters

	// SetStatusServer attaches the status surface to stop during shutdown
	// drain. It exists because the status surface is constructed after the
	// supervisor (it needs the supervisor's Counters to report metrics) but
	// must still be stopped as the first step of drain.
	SetStatusServer(s stoppable)
}

// New returns a Supervisor bound to l, appending/streaming through store.
// statusSrv and timestampProducer (either may be nil) are stopped, in that
// order, as the first two steps of shutdown drain.
func New(l net.Listener, store logstore.Store, shutdown libatm.Value[bool], log diag.Logger, statusSrv, timestampProducer stoppable) Supervisor {
	return &supervisor{
		listener:  l,
		store:     store,
		shutdown:  shutdown,
		log:       log,
		statusSrv: statusSrv,
		producer:  timestampProducer,
		reg:       registry.New[*conn](),
	}
}

type supervisor struct {
	listener  net.Listener
	store     logstore.Store
	shutdown  libatm.Value[bool]
	log       diag.Logger
	statusSrv stoppable
	producer  stoppable

	reg registry.Registry[*conn]
}

func (s *supervisor) Counters() registry.Counters {
	return s.reg.Counters()
}

func (s *supervisor) SetStatusServer(srv stoppable) {
	s.statusSrv = srv
}

func (s *supervisor) Run() {
	for {
		c, e := s.listener.Accept()
		if e != nil {
			if s.shutdown.Load() {
				break
			}

			s.log.Warn("transient accept error", diag.Fields{"error": ErrorAccept.Error(e).Error()})
			continue
		}

		peer := c.RemoteAddr().String()
		s.log.Info("Accepted connection from "+peer, diag.Fields{"peer": peer})
		s.spawn(c)
		s.reap()
	}

	s.drain()
}

func (s *supervisor) spawn(c net.Conn) {
	entry := &conn{c: c, done: make(chan struct{})}
	id := s.reg.Insert(entry)

	w := session.New(c, s.store, s.shutdown, s.log)

	go func() {
		defer close(entry.done)
		defer s.reg.MarkCompleted(id)

		w.Run()
	}()
}

// reap joins and closes every worker whose completed flag is already set,
// bounding registry growth at steady state to the in-flight connections.
func (s *supervisor) reap() {
	for _, e := range s.reg.ReapCompleted() {
		<-e.Handle.done
		peer := e.Handle.c.RemoteAddr().String()
		_ = e.Handle.c.Close()
		s.log.Info("Closed connection from "+peer, diag.Fields{"peer": peer})
	}
}

func (s *supervisor) drain() {
	s.log.Info("Caught signal, exiting", diag.Fields{})

	if s.statusSrv != nil {
		s.statusSrv.Stop()
	}

	if s.producer != nil {
		s.producer.Stop()
	}

	// Force every in-flight transport's blocking read to unblock before
	// joining anyone, so workers can make progress concurrently rather
	// than being drained one read-timeout at a time.
	for _, e := range s.reg.Snapshot() {
		_ = e.Handle.c.Close()
	}

	for {
		e, ok := s.reg.RemoveFront()
		if !ok {
			break
		}

		peer := e.Handle.c.RemoteAddr().String()
		<-e.Handle.done
		_ = e.Handle.c.Close()
		s.log.Info("Closed connection from "+peer, diag.Fields{"peer": peer})
	}

	_ = s.listener.Close()
	_ = s.store.Purge()
}
