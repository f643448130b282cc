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

package logstore

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nabbar/aesdsocket/internal/logperm"
)

// New returns a Store backed by the file at path, created (if necessary)
// with the given permission on first Append or StreamTo.
func New(path string, perm logperm.Perm) Store {
	return &store{
		path: path,
		perm: perm,
	}
}

type store struct {
	mu   sync.Mutex
	path string
	perm logperm.Perm

	recordsAppended atomic.Uint64
	bytesAppended   atomic.Uint64
	failedAppends   atomic.Uint64
}

func (s *store) Append(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, e := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, s.perm.FileMode())
	if e != nil {
		s.failedAppends.Add(1)
		return ErrorOpenAppend.Error(e)
	}
	defer func() { _ = f.Close() }()

	n, e := f.Write(p)
	if e != nil {
		s.failedAppends.Add(1)
		return ErrorWriteAppend.Error(e)
	}

	s.recordsAppended.Add(1)
	s.bytesAppended.Add(uint64(n))

	return nil
}

func (s *store) StreamTo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, e := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, s.perm.FileMode())
	if e != nil {
		return ErrorOpenRead.Error(e)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 32*1024)
	for {
		n, re := f.Read(buf)
		if n > 0 {
			if _, we := w.Write(buf[:n]); we != nil {
				return ErrorStreamWrite.Error(we)
			}
		}

		if re == io.EOF {
			return nil
		} else if re != nil {
			return ErrorStreamRead.Error(re)
		}
	}
}

func (s *store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := os.Remove(s.path); e != nil && !os.IsNotExist(e) {
		return ErrorPurge.Error(e)
	}

	return nil
}

func (s *store) Counters() Counters {
	return Counters{
		RecordsAppended: s.recordsAppended.Load(),
		BytesAppended:   s.bytesAppended.Load(),
		FailedAppends:   s.failedAppends.Load(),
	}
}
