// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics instruments solver runs for cmd/storm. The core
// packages (xint, mdp, solve, selector, product, validate, permute)
// never import this package: it stays a purely ambient, driver-level
// concern, so the solvers themselves touch no file, socket, or lock.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors cmd/storm registers.
type Metrics struct {
	SolveSeconds *prometheus.HistogramVec
	Runs         prometheus.Counter
}

// New registers a fresh set of collectors against reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SolveSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_cmdp",
			Name:      "solve_seconds",
			Help:      "Wall-clock duration of each solver stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cmdp",
			Name:      "runs_total",
			Help:      "Number of times cmd/storm has run a full solve+validate cycle.",
		}),
	}
	reg.MustRegister(m.SolveSeconds, m.Runs)
	return m
}

// Serve starts an HTTP server exposing reg's metrics at /metrics on
// addr. It blocks; callers run it in its own goroutine.
func Serve(addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
