// Package metrics provides optional instrumentation for extractor and
// splitter calls: counters and duration histograms, backed by
// github.com/prometheus/client_golang, grounded on the collector
// registration pattern used elsewhere in the example pack. Wiring a
// Collector is purely additive; the core algorithms never import this
// package directly, only the thin service wrappers that call them do.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records extraction and splitting activity.
type Collector interface {
	// ObserveExtract records one CopyAndExtract call's outcome and
	// duration.
	ObserveExtract(duration time.Duration, warnings int, err error)

	// ObserveSplit records one splitter pattern's outcome and duration.
	ObserveSplit(pattern string, matched int, duration time.Duration, err error)
}

// PrometheusCollector is the default Collector implementation.
type PrometheusCollector struct {
	extractCalls    *prometheus.CounterVec
	extractDuration prometheus.Histogram
	extractWarnings prometheus.Counter

	splitMatches  *prometheus.CounterVec
	splitDuration *prometheus.HistogramVec
}

// NewPrometheusCollector builds and registers a PrometheusCollector on
// reg. Pass prometheus.DefaultRegisterer to use the global registry.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		extractCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glycutter",
			Subsystem: "extractor",
			Name:      "calls_total",
			Help:      "Total CopyAndExtract calls, labeled by outcome.",
		}, []string{"outcome"}),
		extractDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "glycutter",
			Subsystem: "extractor",
			Name:      "call_duration_seconds",
			Help:      "CopyAndExtract call latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		extractWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "glycutter",
			Subsystem: "extractor",
			Name:      "warnings_total",
			Help:      "Total Warning values emitted by CopyAndExtract.",
		}),
		splitMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glycutter",
			Subsystem: "splitter",
			Name:      "matches_total",
			Help:      "Total bonds matched per split pattern.",
		}, []string{"pattern"}),
		splitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "glycutter",
			Subsystem: "splitter",
			Name:      "call_duration_seconds",
			Help:      "Split* call latency in seconds, labeled by pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pattern"}),
	}

	reg.MustRegister(c.extractCalls, c.extractDuration, c.extractWarnings, c.splitMatches, c.splitDuration)
	return c
}

// ObserveExtract implements Collector.
func (c *PrometheusCollector) ObserveExtract(duration time.Duration, warnings int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.extractCalls.WithLabelValues(outcome).Inc()
	c.extractDuration.Observe(duration.Seconds())
	c.extractWarnings.Add(float64(warnings))
}

// ObserveSplit implements Collector.
func (c *PrometheusCollector) ObserveSplit(pattern string, matched int, duration time.Duration, err error) {
	c.splitMatches.WithLabelValues(pattern).Add(float64(matched))
	c.splitDuration.WithLabelValues(pattern).Observe(duration.Seconds())
}

// Noop is a Collector that discards everything.
type Noop struct{}

func (Noop) ObserveExtract(time.Duration, int, error)      {}
func (Noop) ObserveSplit(string, int, time.Duration, error) {}
