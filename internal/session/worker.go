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

package session

import (
	"bytes"
	"errors"
	"io"
	"net"

	libatm "github.com/nabbar/aesdsocket/internal/atomic"
	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"
)

// chunkSize is the amount read from the transport per Read call. It is an
// implementation parameter only; record size is unbounded regardless of
// this value.
const chunkSize = 4096

type worker struct {
	conn     net.Conn
	store    logstore.Store
	shutdown libatm.Value[bool]
	log      diag.Logger

	buf []byte
}

func (w *worker) Run() {
	peer := w.conn.RemoteAddr().String()
	chunk := make([]byte, chunkSize)

	for {
		n, e := w.conn.Read(chunk)
		if n > 0 {
			w.buf = append(w.buf, chunk[:n]...)

			if !w.drainRecords(peer) {
				return
			}
		}

		if e != nil {
			if errors.Is(e, io.EOF) {
				w.log.Info("peer reached end of stream", diag.Fields{"peer": peer})
			} else {
				w.log.Error("read from transport failed", diag.Fields{"peer": peer, "error": ErrorRead.Error(e).Error()})
			}

			return
		}

		if w.shutdown.Load() {
			return
		}
	}
}

// drainRecords extracts and processes every complete \n-terminated record
// currently in the buffer. It returns false if a fatal error during
// append/stream-back means the worker must stop.
func (w *worker) drainRecords(peer string) bool {
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			return true
		}

		record := w.buf[:i+1]

		if e := w.store.Append(record); e != nil {
			w.log.Error("append to log store failed", diag.Fields{"peer": peer, "error": ErrorAppend.Error(e).Error()})
			return false
		}

		if e := w.store.StreamTo(w.conn); e != nil {
			w.log.Error("stream log store back to peer failed", diag.Fields{"peer": peer, "error": ErrorStream.Error(e).Error()})
			return false
		}

		remaining := len(w.buf) - (i + 1)
		copy(w.buf, w.buf[i+1:])
		w.buf = w.buf[:remaining]
	}
}
