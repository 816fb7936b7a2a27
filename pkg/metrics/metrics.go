package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dentalsite", Name: "submissions_total", Help: "Number of persisted form submissions by kind."},
		[]string{"kind"},
	)
	ContentWrites = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "dentalsite", Name: "content_writes_total", Help: "Number of site content replacements."},
	)
	ContentBootstraps = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "dentalsite", Name: "content_bootstraps_total", Help: "Number of times the default content document was created."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SubmissionsTotal)
	reg.MustRegister(ContentWrites)
	reg.MustRegister(ContentBootstraps)
}
