/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/ddx/apis"
)

// Metrics holds Prometheus collectors for dispatch calls.
//
// Metric naming follows Prometheus conventions:
//   - ddx_ prefix
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
type Metrics struct {
	// Calls counts handler invocations by method and status ("ok" or "error").
	Calls *prometheus.CounterVec
	// Duration observes handler latency by method.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the dispatch collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil). Collectors that are already
// registered are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	calls, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ddx_dispatch_total",
			Help: "Total number of dispatched handler calls by method and status.",
		},
		[]string{"method", "status"},
	))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ddx_dispatch_duration_seconds",
			Help:    "Duration of dispatched handler calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{Calls: calls, Duration: duration}, nil
}

// Middleware returns middleware that records m.
func (m *Metrics) Middleware() apis.Middleware {
	return func(ctx context.Context, call *apis.Call, next apis.Invocation) (any, error) {
		start := time.Now()
		out, err := next(ctx, call)
		m.Duration.WithLabelValues(call.Method).Observe(time.Since(start).Seconds())

		status := "ok"
		if err != nil {
			status = "error"
		}
		m.Calls.WithLabelValues(call.Method, status).Inc()
		return out, err
	}
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}
