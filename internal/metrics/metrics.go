// Package metrics holds the Prometheus collectors of operation synthesis.
//
// A nil *Metrics is valid and records nothing, so callers never need to check
// whether metrics were configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orval"

// Metrics records synthesis activity.
type Metrics struct {
	synthesized *prometheus.CounterVec
	filtered    prometheus.Counter
	dropped     prometheus.Counter
	hooks       *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// A nil reg leaves the collectors unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		synthesized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_synthesized_total",
			Help:      "Operation records produced, by HTTP verb.",
		}, []string{"verb"}),
		filtered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_filtered_total",
			Help:      "Operations removed by the tag filter.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_dropped_total",
			Help:      "Operations left with no request content type after filtering.",
		}),
		hooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hooks_resolved_total",
			Help:      "Mutator slots resolved, by slot and kind (inline or reference).",
		}, []string{"slot", "kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "synthesis_duration_seconds",
			Help:      "Time spent synthesizing a whole document.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.synthesized, m.filtered, m.dropped, m.hooks, m.duration}
}

// OperationSynthesized counts one produced record.
func (m *Metrics) OperationSynthesized(verb string) {
	if m == nil {
		return
	}
	m.synthesized.WithLabelValues(verb).Inc()
}

// OperationFiltered counts one operation removed by the tag filter.
func (m *Metrics) OperationFiltered() {
	if m == nil {
		return
	}
	m.filtered.Inc()
}

// OperationDropped counts one operation dropped for lack of content types.
func (m *Metrics) OperationDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

// HookResolved counts one resolved mutator slot.
func (m *Metrics) HookResolved(slot, kind string) {
	if m == nil {
		return
	}
	m.hooks.WithLabelValues(slot, kind).Inc()
}

// ObserveDuration records the duration of a synthesis run started at start.
func (m *Metrics) ObserveDuration(start time.Time) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
}
