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

package statusapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/nabbar/aesdsocket/internal/diag"
	"github.com/nabbar/aesdsocket/internal/logstore"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	m sync.Mutex

	addr    string
	store   logstore.Store
	conns   ConnStats
	running func() bool
	log     diag.Logger

	srv     *http.Server
	boundTo string
}

func (s *server) Start() error {
	s.m.Lock()
	defer s.m.Unlock()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "aesdsocket_connections_accepted_total",
			Help: "Total number of accepted connections.",
		}, func() float64 { return float64(s.conns.Counters().Accepted) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "aesdsocket_connections_active",
			Help: "Number of connection workers currently running.",
		}, func() float64 { return float64(s.conns.Counters().Active) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "aesdsocket_connections_completed_total",
			Help: "Total number of connection workers that have returned.",
		}, func() float64 { return float64(s.conns.Counters().Completed) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "aesdsocket_log_records_appended_total",
			Help: "Total number of newline-terminated records appended to the log.",
		}, func() float64 { return float64(s.store.Counters().RecordsAppended) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "aesdsocket_log_bytes_appended_total",
			Help: "Total number of bytes appended to the log.",
		}, func() float64 { return float64(s.store.Counters().BytesAppended) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "aesdsocket_log_failed_appends_total",
			Help: "Total number of append attempts that failed.",
		}, func() float64 { return float64(s.store.Counters().FailedAppends) }),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/healthz", s.handleHealthz)
	r.GET("/status", s.handleStatus)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	s.srv = &http.Server{Addr: s.addr, Handler: r}

	ln, e := net.Listen("tcp", s.addr)
	if e != nil {
		return ErrorListen.Error(e)
	}
	s.boundTo = ln.Addr().String()

	go func() {
		s.log.Info("status surface is starting", diag.Fields{"addr": s.addr})
		if e := s.srv.Serve(ln); e != nil && !errors.Is(e, http.ErrServerClosed) {
			s.log.Error("status surface returned an error", diag.Fields{"error": e.Error()})
		}
	}()

	return nil
}

func (s *server) Stop() {
	s.m.Lock()
	srv := s.srv
	s.m.Unlock()

	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if e := srv.Shutdown(ctx); e != nil && !errors.Is(e, context.DeadlineExceeded) {
		s.log.Error("status surface shutdown failed", diag.Fields{"error": ErrorShutdown.Error(e).Error()})
	}
}

func (s *server) Addr() string {
	s.m.Lock()
	defer s.m.Unlock()
	return s.boundTo
}

func (s *server) handleHealthz(c *gin.Context) {
	if s.running != nil && s.running() {
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (s *server) handleStatus(c *gin.Context) {
	cc := s.conns.Counters()
	lc := s.store.Counters()

	c.JSON(http.StatusOK, gin.H{
		"running": s.running != nil && s.running(),
		"connections": gin.H{
			"accepted":  cc.Accepted,
			"active":    cc.Active,
			"completed": cc.Completed,
		},
		"log": gin.H{
			"records_appended": lc.RecordsAppended,
			"bytes_appended":   lc.BytesAppended,
			"failed_appends":   lc.FailedAppends,
		},
	})
}
