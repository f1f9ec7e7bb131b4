package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal - 총 요청 수
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_requests_total",
			Help: "Total number of requests to the calculator service",
		},
		[]string{"operation", "status"},
	)

	// RequestDuration - 요청 처리 시간
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculator_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// ErrorsTotal - 오류 종류별 실패 수
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_errors_total",
			Help: "Total number of failed requests by error kind",
		},
		[]string{"operation", "kind"},
	)

	// PanicsRecovered - 복구된 패닉 수
	PanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calculator_panics_recovered_total",
			Help: "Total number of panics recovered in the request cycle",
		},
	)
)
