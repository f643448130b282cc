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

// Command writer writes a single string to a file, creating or truncating
// it as needed. It is the sibling utility named by the original assignment
// alongside the socket server, kept here as a minimal second entry point.
package main

import (
	"fmt"
	"log/syslog"
	"os"

	"github.com/nabbar/aesdsocket/internal/logperm"
)

const defaultPerm = logperm.Perm(0o644)

func main() {
	if len(os.Args) != 3 {
		_, _ = fmt.Fprintln(os.Stderr, "Error: Two arguments required!")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s <writefile> <writestr>\n", os.Args[0])
		os.Exit(1)
	}

	writeFile := os.Args[1]
	writeStr := os.Args[2]

	w, e := syslog.New(syslog.LOG_USER, "writer")
	if e == nil {
		defer func() { _ = w.Close() }()
	}

	logDebug(w, fmt.Sprintf("Writing %s to %s", writeStr, writeFile))

	if e := os.WriteFile(writeFile, []byte(writeStr), defaultPerm.FileMode()); e != nil {
		logErr(w, fmt.Sprintf("Failed to write to file %s: %s", writeFile, e.Error()))
		_, _ = fmt.Fprintf(os.Stderr, "Error: Could not write to file %s!\n", writeFile)
		os.Exit(1)
	}
}

func logDebug(w *syslog.Writer, msg string) {
	if w != nil {
		_ = w.Debug(msg)
	}
}

func logErr(w *syslog.Writer, msg string) {
	if w != nil {
		_ = w.Err(msg)
	}
}
