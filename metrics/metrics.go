package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_operations_total",
			Help: "Lifecycle operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RepositorySaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "match_repository_save_duration_seconds",
			Help:    "Duration of full match record saves",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	RepositorySaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_repository_save_failures_total",
			Help: "Failed match record saves",
		},
		[]string{"driver"},
	)
)

// ObserveRepositorySave records one save attempt started at start.
func ObserveRepositorySave(driver string, start time.Time, err error) {
	RepositorySaveDuration.WithLabelValues(driver).Observe(time.Since(start).Seconds())
	if err != nil {
		RepositorySaveFailures.WithLabelValues(driver).Inc()
	}
}

// ObserveOperation counts a lifecycle operation; outcome is "ok" or an
// error class such as "not_found".
func ObserveOperation(operation, outcome string) {
	MatchOperations.WithLabelValues(operation, outcome).Inc()
}
