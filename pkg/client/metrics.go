// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsRegistry is private so the client never pollutes an application's
// default registry. Embedders scrape it via MetricsRegistry.
var metricsRegistry = prometheus.NewRegistry()

var (
	rpcTotal = promauto.With(metricsRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "vortex",
		Subsystem: "client",
		Name:      "rpc_total",
		Help:      "RPCs issued by the client, by method and outcome.",
	}, []string{"method", "outcome"})

	rpcDuration = promauto.With(metricsRegistry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vortex",
		Subsystem: "client",
		Name:      "rpc_duration_seconds",
		Help:      "Wall time of client RPCs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

const (
	outcomeOK          = "ok"
	outcomeServerError = "server_error"
	outcomeRPCFailed   = "rpc_failed"
)

// MetricsRegistry returns the registry holding the vortex_client_* series.
func MetricsRegistry() *prometheus.Registry {
	return metricsRegistry
}
