package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeLogical   = "logical_error"
	outcomeDecode    = "decode_error"
	outcomeTransport = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ctrl_client",
			Name:      "requests_total",
			Help:      "Backend requests by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ctrl_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of completed backend requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
