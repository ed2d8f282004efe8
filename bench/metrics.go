// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "strassenbench"

// Metrics holds the Prometheus collectors of one run on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	duration   *prometheus.HistogramVec
	lastRun    *prometheus.GaugeVec
	pairs      prometheus.Counter
	mismatches prometheus.Counter
}

// NewMetrics creates and registers the benchmark collectors.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "multiply_duration_seconds",
		Help:      "Wall time of one matrix product, by algorithm",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
	}, []string{"algorithm"})

	m.lastRun = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "last_duration_seconds",
		Help:      "Wall time of the most recent product, by algorithm and matrix size",
	}, []string{"algorithm", "size"})

	m.pairs = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "pairs_total",
		Help:      "Matrix pairs benchmarked",
	})

	m.mismatches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "mismatches_total",
		Help:      "Pairs whose standard and Strassen products differ",
	})

	m.registry.MustRegister(m.duration, m.lastRun, m.pairs, m.mismatches)

	return m
}

func (m *Metrics) observe(res Result) {
	size := strconv.Itoa(res.Size)

	m.duration.WithLabelValues(AlgorithmStandard).Observe(res.Standard.Seconds())
	m.duration.WithLabelValues(AlgorithmStrassen).Observe(res.Strassen.Seconds())
	m.lastRun.WithLabelValues(AlgorithmStandard, size).Set(res.Standard.Seconds())
	m.lastRun.WithLabelValues(AlgorithmStrassen, size).Set(res.Strassen.Seconds())
	m.pairs.Inc()
	if !res.Match {
		m.mismatches.Inc()
	}
}

// WriteTextfile writes the registry in the text exposition format to path,
// atomically, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("bench: write metrics %s: %w", path, err)
	}

	return nil
}
