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

// Command aesdsocket listens on a TCP port, appends newline-terminated
// records received from clients to a shared log file, and streams the full
// log back to each client after every record. See internal/supervisor for
// the accept loop and internal/session for the per-connection protocol.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/nabbar/aesdsocket/internal/config"
	"github.com/nabbar/aesdsocket/internal/daemon"
	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"
	"github.com/nabbar/aesdsocket/internal/signalbridge"
	"github.com/nabbar/aesdsocket/internal/statusapi"
	"github.com/nabbar/aesdsocket/internal/supervisor"
	"github.com/nabbar/aesdsocket/internal/timestamp"

	libatm "github.com/nabbar/aesdsocket/internal/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const progName = "aesdsocket"

func main() {
	cmd := newRootCommand()
	if e := cmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           progName,
		Short:         "Append-and-echo TCP log server",
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().BoolP("daemon", "d", false, "detach into the background after binding the listening socket")
	cmd.SetUsageFunc(func(*cobra.Command) error {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [-d]\n", progName)
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_ = c.UsageFunc()(c)
	})

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, e := config.Resolve(cmd.Flags())
	if e != nil {
		return e
	}

	log := diag.New(os.Stderr, logrus.InfoLevel)
	if e := log.WithSyslog(progName); e != nil {
		log.Warn("syslog hook unavailable, continuing with stream-only diagnostics", diag.Fields{"error": e.Error()})
	}

	shutdown := libatm.NewValue[bool]()

	ln, e := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if e != nil {
		log.Error("failed to bind listening socket", diag.Fields{"port": cfg.Port, "error": e.Error()})
		return e
	}

	if cfg.Daemon {
		if e := daemon.Detach(); e != nil {
			log.Error("failed to detach into the background", diag.Fields{"error": e.Error()})
			return e
		}
	}

	bridge := signalbridge.New(shutdown)
	bridge.Listen(ln)
	defer bridge.Stop()

	store := logstore.New(cfg.LogPath, cfg.LogPerm)

	producer := timestamp.New(store, cfg.TimestampInterval)
	producer.OnError(func(e error) {
		log.Error("timestamp producer failed to append", diag.Fields{"error": e.Error()})
	})
	producer.Start()

	running := func() bool { return !shutdown.Load() }
	sup := supervisor.New(ln, store, shutdown, log, nil, producer)

	if cfg.StatusAddr != "" {
		status := statusapi.New(cfg.StatusAddr, store, sup, running, log)
		if e := status.Start(); e != nil {
			log.Error("failed to start status surface", diag.Fields{"addr": cfg.StatusAddr, "error": e.Error()})
			return e
		}
		sup.SetStatusServer(status)
	}

	sup.Run()
	return nil
}
