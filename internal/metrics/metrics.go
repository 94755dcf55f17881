// SPDX-License-Identifier: MIT

// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis kinds used as the "kind" label.
const (
	KindStructure = "structure"
	KindDesign    = "design"
	KindSpectrum  = "spectrum"
)

// Collaborator outcomes used as the "outcome" label.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	StepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spherelab_steps_total",
		Help: "Total number of optimizer steps taken across all sessions",
	})

	StepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spherelab_step_duration_seconds",
		Help:    "Wall time of one Advance call",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
	})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spherelab_analysis_duration_seconds",
		Help:    "Wall time of structure and design analysis",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"kind"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spherelab_cache_hits_total",
		Help: "Analysis cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spherelab_cache_misses_total",
		Help: "Analysis cache misses",
	})

	AutGroupCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spherelab_autgroup_calls_total",
		Help: "Automorphism collaborator calls by outcome",
	}, []string{"outcome"})

	Sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spherelab_sessions",
		Help: "Number of live sessions",
	})
)

// ObserveSteps records k steps that took d.
func ObserveSteps(k int, d time.Duration) {
	StepsTotal.Add(float64(k))
	StepDuration.Observe(d.Seconds())
}

// ObserveAnalysis records one analysis of the given kind.
func ObserveAnalysis(kind string, d time.Duration) {
	AnalysisDuration.WithLabelValues(kind).Observe(d.Seconds())
}
