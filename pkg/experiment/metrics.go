package experiment

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/scottcagno/hashprobe/pkg/hashmap/openaddr"
)

// metrics records insert outcomes of every run on its own registry, so
// concurrent experiments never collide on the default one
type metrics struct {
	reg     *prometheus.Registry
	probes  *prometheus.HistogramVec
	inserts *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		probes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashprobe",
			Name:      "insert_probes",
			Help:      "Probes spent placing a new key.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"strategy"}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashprobe",
			Name:      "inserts_total",
			Help:      "Insert calls by outcome.",
		}, []string{"strategy", "status"}),
	}
	m.reg.MustRegister(m.probes, m.inserts)
	return m
}

// observe is called for every insert
func (m *metrics) observe(s openaddr.Strategy, r openaddr.Result) {
	m.inserts.WithLabelValues(s.Short(), r.Status.String()).Inc()
	if r.Status == openaddr.Inserted {
		m.probes.WithLabelValues(s.Short()).Observe(float64(r.Probes))
	}
}

// writeTo saves every metric in the prometheus text format
func (m *metrics) writeTo(filename string) error {
	return prometheus.WriteToTextfile(filename, m.reg)
}
