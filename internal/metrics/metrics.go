package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_api_requests_total",
			Help: "Total number of outbound API requests.",
		},
		[]string{"code", "method", "endpoint"},
	)
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_api_request_duration_seconds",
			Help:    "Duration of outbound API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_api_requests_in_flight",
			Help: "Current number of outbound API requests awaiting a response.",
		},
	)
)

// ObserveRequest records one completed outbound call. A status code of zero
// means the request never produced a response.
func ObserveRequest(method, endpoint string, code int, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(strconv.Itoa(code), method, endpoint).Inc()
	apiRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RequestStarted() {
	apiRequestsInFlight.Inc()
}

func RequestFinished() {
	apiRequestsInFlight.Dec()
}
