package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	estimationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diet_coach",
			Name:      "estimation_requests_total",
			Help:      "Count of external estimation calls by kind and status.",
		},
		[]string{"kind", "status"},
	)

	entriesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diet_coach",
			Name:      "entries_logged_total",
			Help:      "Count of entries appended to daily logs by kind.",
		},
		[]string{"kind"},
	)

	sessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "diet_coach",
			Name:      "sessions_created_total",
			Help:      "Count of sessions opened.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(estimationRequests, entriesLogged, sessionsCreated)
	})
}

func IncEstimation(kind, status string) {
	estimationRequests.WithLabelValues(kind, status).Inc()
}

func IncEntryLogged(kind string) {
	entriesLogged.WithLabelValues(kind).Inc()
}

func IncSessionCreated() {
	sessionsCreated.Inc()
}
