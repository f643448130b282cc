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

// Package diag is the single shared diagnostic sink for the service: every
// "Accepted connection from <ip>", "Closed connection from <ip>", "Caught
// signal, exiting", and I/O error line named by the external interface goes
// through here, structured, never through fmt.Println or log.Printf.
package diag

import (
	"io"
	"log/syslog"

	"github.com/sirupsen/logrus"
)

// Fields is a shorthand for the structured key/value pairs attached to a
// diagnostic event.
type Fields = logrus.Fields

// Logger is the diagnostic sink contract consumed by every other component.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)

	// WithSyslog mirrors Warn-level-and-above entries to the host syslog
	// facility. It is a no-op if the local syslog daemon is unreachable;
	// the returned error is informational, never fatal.
	WithSyslog(tag string) error
}

// New returns a Logger writing structured entries to w at level (and above).
func New(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &diagLogger{log: l}
}

type diagLogger struct {
	log *logrus.Logger
}

func (d *diagLogger) Debug(msg string, f Fields) { d.log.WithFields(f).Debug(msg) }
func (d *diagLogger) Info(msg string, f Fields)  { d.log.WithFields(f).Info(msg) }
func (d *diagLogger) Warn(msg string, f Fields)  { d.log.WithFields(f).Warn(msg) }
func (d *diagLogger) Error(msg string, f Fields) { d.log.WithFields(f).Error(msg) }

func (d *diagLogger) WithSyslog(tag string) error {
	w, e := syslog.New(syslog.LOG_WARNING|syslog.LOG_DAEMON, tag)
	if e != nil {
		return e
	}

	d.log.AddHook(&syslogHook{w: w})
	return nil
}

// syslogHook mirrors Warn-level-and-above logrus entries to the local
// syslog facility. Adapted from the teacher's HookSyslog, trimmed to the
// one sink this service needs (no network dial, fixed level floor).
type syslogHook struct {
	w *syslog.Writer
}

func (h *syslogHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.WarnLevel}
}

func (h *syslogHook) Fire(e *logrus.Entry) error {
	line, err := e.String()
	if err != nil {
		return err
	}

	switch e.Level {
	case logrus.ErrorLevel:
		return h.w.Err(line)
	default:
		return h.w.Warning(line)
	}
}
