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

package timestamp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/nabbar/aesdsocket/internal/logperm"
	"github.com/nabbar/aesdsocket/internal/logstore"
	. "github.com/nabbar/aesdsocket/internal/timestamp"

	libdur "github.com/nabbar/aesdsocket/internal/duration"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Producer", func() {
	var (
		path  string
		store logstore.Store
	)

	BeforeEach(func() {
		path = filepath.Join(os.TempDir(), "aesdsocket-timestamp-test.log")
		_ = os.Remove(path)
		store = logstore.New(path, logperm.Perm(0o644))
	})

	AfterEach(func() {
		_ = os.Remove(path)
	})

	It("appends at least one timestamp record before Stop returns", func() {
		p := New(store, libdur.Duration(20*time.Millisecond))
		p.Start()

		Eventually(func() uint64 {
			return store.Counters().RecordsAppended
		}, "500ms", "10ms").Should(BeNumerically(">=", 1))

		p.Stop()

		buf := &bytes.Buffer{}
		Expect(store.StreamTo(buf)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("timestamp:"))
	})

	It("tolerates Start/Stop being called more than once", func() {
		p := New(store, libdur.Duration(20*time.Millisecond))
		p.Start()
		p.Start()
		p.Stop()
		p.Stop()
	})
})
