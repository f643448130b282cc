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

package config_test

import (
	"time"

	. "github.com/nabbar/aesdsocket/internal/config"

	"github.com/spf13/pflag"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolve", func() {
	It("resolves built-in defaults when nothing else is set", func() {
		s, err := Resolve(nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Port).To(Equal(DefaultPort))
		Expect(s.LogPath).To(Equal(DefaultLogPath))
		Expect(s.StatusAddr).To(Equal(DefaultStatusAddr))
		Expect(s.Daemon).To(BeFalse())
		Expect(s.TimestampInterval.Time()).To(Equal(10 * time.Second))
	})

	It("lets a flag override the default port", func() {
		fs := pflag.NewFlagSet("aesdsocket", pflag.ContinueOnError)
		fs.Int("port", 9100, "")
		Expect(fs.Set("port", "9100")).To(Succeed())

		s, err := Resolve(fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Port).To(Equal(9100))
	})

	It("rejects an invalid log permission flag", func() {
		fs := pflag.NewFlagSet("aesdsocket", pflag.ContinueOnError)
		fs.String("log-perm", "not-a-perm", "")
		Expect(fs.Set("log-perm", "not-a-perm")).To(Succeed())

		_, err := Resolve(fs)
		Expect(err).To(HaveOccurred())
	})
})
