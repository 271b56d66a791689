// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Prometheus metrics for test method executions.

// Package metrics reports harness results to Prometheus.
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	runner := harness.NewRunner(harness.WithRecorder(rec))
//
// Three series are kept per class and method:
//
//	testharness_method_runs_total{class,method,outcome}
//	testharness_method_duration_seconds{class,method}
//	testharness_method_repetitions_total{class,method}
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/getoutreach/testharness/pkg/harness"
)

const namespace = "testharness"

// Recorder implements harness.Recorder on top of Prometheus
// collectors. It is safe for concurrent use.
type Recorder struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	repetitions *prometheus.CounterVec
}

var _ harness.Recorder = (*Recorder)(nil)

// NewRecorder registers the collectors with reg. It panics when they
// are already registered there, like promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "method_runs_total",
			Help:      "Test methods run, by outcome",
		}, []string{"class", "method", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "method_duration_seconds",
			Help:      "Wall clock time of a test method including all of its repetitions",
			// use prometheus.DefBuckets which is
			// []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
		}, []string{"class", "method"}),
		repetitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "method_repetitions_total",
			Help:      "Invocations of test method bodies",
		}, []string{"class", "method"}),
	}
}

// Observe implements harness.Recorder.
func (r *Recorder) Observe(res harness.Result) {
	class, method := res.Method.FullClassName(), res.Method.Name

	r.runs.WithLabelValues(class, method, string(res.Outcome)).Inc()
	r.duration.WithLabelValues(class, method).Observe(res.Duration.Seconds())
	r.repetitions.WithLabelValues(class, method).Add(float64(res.Runs))
}
