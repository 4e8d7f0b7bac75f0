package mokp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the run-level Prometheus collectors. Attach one to an
// Optimizer to publish progress; a nil Metrics disables publishing.
type Metrics struct {
	Generations       prometheus.Counter
	Admissions        prometheus.Counter
	ArchiveSize       prometheus.Gauge
	GenerationSeconds prometheus.Histogram
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generations: factory.NewCounter(prometheus.CounterOpts{
			Name: "ibmols_generations_total",
			Help: "Number of generations executed.",
		}),
		Admissions: factory.NewCounter(prometheus.CounterOpts{
			Name: "ibmols_archive_admissions_total",
			Help: "Number of newly archived non-dominated solutions.",
		}),
		ArchiveSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ibmols_archive_size",
			Help: "Current size of the non-dominated archive.",
		}),
		GenerationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ibmols_generation_duration_seconds",
			Help:    "Wall-clock duration of one generation.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *Metrics) observe(admitted, archiveSize int, seconds float64) {
	if m == nil {
		return
	}
	m.Generations.Inc()
	m.Admissions.Add(float64(admitted))
	m.ArchiveSize.Set(float64(archiveSize))
	m.GenerationSeconds.Observe(seconds)
}
