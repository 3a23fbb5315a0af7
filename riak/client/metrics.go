package client

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

var (
	conflictsResolved = metrics.NewCounter("rkv_conflicts_resolved_total")
	siblingsDropped   = metrics.NewCounter("rkv_siblings_dropped_total")
)

// countRequest records one issued request for the operation.
func countRequest(op operation) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`rkv_requests_total{operation=%q}`, op)).Inc()
}

// countError records one failed request for the operation.
func countError(op operation) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`rkv_request_errors_total{operation=%q}`, op)).Inc()
}

// observeDuration records the wall time of one request.
func observeDuration(op operation, start time.Time) {
	metrics.GetOrCreateHistogram(fmt.Sprintf(`rkv_request_duration_seconds{operation=%q}`, op)).UpdateDuration(start)
}
