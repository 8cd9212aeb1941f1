// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fyyur/internal/store"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fyyur_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fyyur_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_mutations_total",
			Help: "Create, update and delete attempts by entity and outcome",
		},
		[]string{"entity", "op", "outcome"},
	)
)

// Mutation outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeRejected  = "rejected"
	OutcomeInvalid   = "invalid"
	OutcomeInfraFail = "error"
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMutation classifies the result of a mutation and counts it.
func RecordMutation(entity, op string, err error) {
	MutationsTotal.WithLabelValues(entity, op, MutationOutcome(err)).Inc()
}

// MutationOutcome maps a mutation error to its outcome label.
func MutationOutcome(err error) string {
	var perr *store.PersistenceError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, store.ErrNotFound):
		return OutcomeNotFound
	case errors.As(err, &perr):
		return OutcomeRejected
	default:
		return OutcomeInfraFail
	}
}

// RecordRejectedForm counts a mutation whose form failed validation before
// reaching the store.
func RecordRejectedForm(entity, op string) {
	MutationsTotal.WithLabelValues(entity, op, OutcomeInvalid).Inc()
}
