package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "documents_saved_total", Help: "Number of successful document saves by backend."},
		[]string{"backend"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "searches_total", Help: "Number of search calls by backend."},
		[]string{"backend"},
	)
	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "docstore", Name: "search_results", Help: "Documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 8)},
		[]string{"backend"},
	)
	BackendErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "backend_errors_total", Help: "Backend failures by backend and operation."},
		[]string{"backend", "op"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(DocumentsSaved)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchResults)
	reg.MustRegister(BackendErrors)
}
