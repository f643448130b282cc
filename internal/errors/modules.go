/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

// Package-reserved ranges of CodeError values, one block per package that
// registers its own messages with RegisterIdFctMessage. Each block leaves
// headroom for the owning package to grow without colliding with the next.
// MinPkgFilePerm and MinPkgDiag are reserved; no package declares codes in them.
const (
	MinPkgConfig     = 100
	MinPkgFilePerm   = 200
	MinPkgLogStore   = 300
	MinPkgSession    = 400
	MinPkgRegistry   = 500
	MinPkgTimestamp  = 600
	MinPkgSupervisor = 700
	MinPkgSignal     = 800
	MinPkgDiag       = 900
	MinPkgStatusAPI  = 1000

	MinAvailable = 1100
)
