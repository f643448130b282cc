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

// Package registry tracks the set of active connection workers on behalf of
// the supervisor. Only the supervisor inserts, reaps, and removes entries; a
// worker touches only its own completed flag through MarkCompleted, never
// the list structure itself.
package registry

// ID is a monotonically increasing worker identity, unique for the lifetime
// of the process.
type ID uint64

// Entry pairs a registry identity with the handle it was inserted under —
// the "session handle" named by the data model, generic so the supervisor
// can store whatever it needs to join/close a worker (typically a struct
// bundling the net.Conn and a done channel).
type Entry[T any] struct {
	ID     ID
	Handle T
}

// Counters is a point-in-time snapshot exposed to the status surface.
type Counters struct {
	Accepted  uint64
	Active    int
	Completed uint64
}

// Registry is the supervisor-owned bookkeeping structure for active workers,
// keyed by identity and carrying an arbitrary per-worker handle of type T.
type Registry[T any] interface {
	// Insert adds a new, not-yet-completed entry under handle and returns
	// its identity.
	Insert(handle T) ID

	// MarkCompleted flags id as finished. Safe to call from the worker
	// goroutine itself; it does not remove the entry.
	MarkCompleted(id ID)

	// ReapCompleted removes and returns every entry currently marked
	// completed. O(n) in the number of live entries.
	ReapCompleted() []Entry[T]

	// Snapshot returns every current entry, in insertion order, without
	// removing them. Used during shutdown drain to force every in-flight
	// transport closed before joining workers one at a time.
	Snapshot() []Entry[T]

	// RemoveFront removes and returns the first entry in insertion order,
	// regardless of its completed flag. Used during shutdown drain, where
	// the lock must be released before the caller joins the worker.
	RemoveFront() (Entry[T], bool)

	// Remove deletes id unconditionally, regardless of its completed flag.
	Remove(id ID)

	// Len returns the number of entries currently tracked, completed or not.
	Len() int

	// Counters returns a snapshot of accepted/active/completed totals.
	Counters() Counters
}
