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

// Package logstore owns the single append-only log file shared by every
// connection worker and the timestamp producer. All access is serialized
// through one mutex so that an append and a stream-back are never observed
// as interleaved or partial by a concurrent reader.
package logstore

import "io"

// Counters is a point-in-time snapshot of the store's activity, exposed to
// the status surface. It is a plain value, safe to read without the store's
// internal lock once returned.
type Counters struct {
	RecordsAppended uint64
	BytesAppended   uint64
	FailedAppends   uint64
}

// Store is the append-log contract used by connection workers and the
// timestamp producer.
type Store interface {
	// Append writes p verbatim to the end of the log file. It is atomic
	// with respect to any other Append or StreamTo call: no caller ever
	// observes a partial write from another.
	Append(p []byte) error

	// StreamTo writes the full current contents of the log, from offset
	// zero to the end-of-file as observed at the moment StreamTo acquires
	// the lock, into w. Appends that begin after StreamTo starts are not
	// reflected in this call's output.
	StreamTo(w io.Writer) error

	// Purge removes the log file from the filesystem. It is called once,
	// by the supervisor, after every worker has been joined.
	Purge() error

	// Counters returns a snapshot of the store's activity counters.
	Counters() Counters
}
