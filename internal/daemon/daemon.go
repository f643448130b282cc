//go:build linux || darwin

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

// Package daemon detaches the current process from its controlling
// terminal using the conventional fork-free Unix sequence: become a
// session leader, change the working directory to /, and redirect the
// standard streams to /dev/null. Called from Bootstrap only after the
// listening socket is already bound, so a bind failure is always reported
// to the original foreground process.
package daemon

import (
	"fmt"
	"os"
	"syscall"
)

// Detach performs the daemonization sequence. It is process-global and
// idempotent-unsafe: call it at most once, from the main goroutine, before
// spawning any other goroutine that depends on the controlling terminal.
func Detach() error {
	if _, e := syscall.Setsid(); e != nil {
		return fmt.Errorf("daemon: setsid failed: %w", e)
	}

	if e := os.Chdir("/"); e != nil {
		return fmt.Errorf("daemon: chdir failed: %w", e)
	}

	devNull, e := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if e != nil {
		return fmt.Errorf("daemon: open %s failed: %w", os.DevNull, e)
	}
	defer func() { _ = devNull.Close() }()

	for _, fd := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if e := syscall.Dup2(int(devNull.Fd()), int(fd.Fd())); e != nil {
			return fmt.Errorf("daemon: redirect fd %d failed: %w", fd.Fd(), e)
		}
	}

	return nil
}
