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
	"fmt"

	liberr "github.com/nabbar/aesdsocket/internal/errors"
)

const (
	ErrorOpenAppend liberr.CodeError = iota + liberr.MinPkgLogStore
	ErrorWriteAppend
	ErrorOpenRead
	ErrorStreamRead
	ErrorStreamWrite
	ErrorPurge
)

func init() {
	if liberr.ExistInMapMessage(ErrorOpenAppend) {
		panic(fmt.Errorf("error code collision with package logstore"))
	}

	liberr.RegisterIdFctMessage(ErrorOpenAppend, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorOpenAppend:
		return "log store: cannot open log file for append"
	case ErrorWriteAppend:
		return "log store: write to log file failed"
	case ErrorOpenRead:
		return "log store: cannot open log file for read"
	case ErrorStreamRead:
		return "log store: read from log file failed while streaming"
	case ErrorStreamWrite:
		return "log store: write to sink failed while streaming"
	case ErrorPurge:
		return "log store: cannot remove log file"
	}

	return liberr.NullMessage
}
