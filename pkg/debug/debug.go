// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package debug exposes the client's Prometheus metrics and pprof profiles
// over HTTP for long-running embedders and vortexctl batch jobs.
package debug

import (
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vortexdb/vortex-go/pkg/client"
	"github.com/vortexdb/vortex-go/pkg/logger"
)

// Mux returns a handler serving /metrics and the pprof endpoints. The
// vortex_client_* series are gathered alongside the process defaults.
func Mux() *http.ServeMux {
	mux := http.NewServeMux()
	gatherers := prometheus.Gatherers{
		prometheus.DefaultGatherer,
		client.MetricsRegistry(),
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// Serve starts the debug server in the background. Errors are logged, not
// returned; a dead debug listener never takes the client down.
func Serve(addr string) {
	go func() {
		logger.Info().Str("addr", addr).Msg("debug server listening")
		if err := http.ListenAndServe(addr, Mux()); err != nil {
			logger.Warn().Err(err).Msg("debug server stopped")
		}
	}()
}
