// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_processed_total",
			Help: "Total number of user queries processed",
		},
		[]string{"intent", "language"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_query_duration_seconds",
			Help: "Duration of one classify-compose turn in seconds",
		},
		[]string{"intent"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_search_requests_total",
			Help: "Total number of search augmentation requests",
		},
		[]string{"provider", "outcome"},
	)

	FallbackResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_fallback_responses_total",
			Help: "Total number of apology fallback responses served",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_active_sessions",
			Help: "Number of live conversation sessions",
		},
	)

	ComplaintsFiled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_complaints_filed_total",
			Help: "Total number of complaints filed through the assistant",
		},
		[]string{"category"},
	)
)
