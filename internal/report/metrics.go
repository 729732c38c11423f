package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"suiterun/internal/domain"
)

const metricsNamespace = "suiterun"

// Metrics exposes run results as Prometheus gauges on a private registry
type Metrics struct {
	registry *prometheus.Registry

	testsTotal       *prometheus.GaugeVec
	testsFailed      *prometheus.GaugeVec
	assertionsFailed *prometheus.GaugeVec
	runDuration      prometheus.Gauge
	iterations       prometheus.Gauge
}

// NewMetrics creates and registers the run gauges
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		testsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tests_total",
			Help:      "Number of tests executed",
		}, []string{"suite"}),
		testsFailed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tests_failed",
			Help:      "Number of tests with at least one failed assertion",
		}, []string{"suite"}),
		assertionsFailed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "assertions_failed",
			Help:      "Number of failed assertions",
		}, []string{"suite"}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time spent running tests",
		}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "iterations",
			Help:      "Number of iterations executed",
		}),
	}
	m.registry.MustRegister(m.testsTotal, m.testsFailed, m.assertionsFailed, m.runDuration, m.iterations)
	return m
}

// Observe sets the gauges from the results, summing across iterations
func (m *Metrics) Observe(results []*domain.RunResult) {
	m.testsTotal.Reset()
	m.testsFailed.Reset()
	m.assertionsFailed.Reset()

	var seconds float64
	for _, run := range results {
		seconds += run.Duration.Seconds()
		for _, sr := range run.Suites {
			tests := sr.Tests()
			failed := 0
			for _, tr := range tests {
				if !tr.Passed() {
					failed++
				}
			}
			m.testsTotal.WithLabelValues(sr.Name).Add(float64(len(tests)))
			m.testsFailed.WithLabelValues(sr.Name).Add(float64(failed))
			m.assertionsFailed.WithLabelValues(sr.Name).Add(float64(sr.Failures()))
		}
	}
	m.runDuration.Set(seconds)
	m.iterations.Set(float64(len(results)))
}

// Gatherer returns the registry backing the gauges
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes the gauges in the Prometheus text format
func (m *Metrics) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
