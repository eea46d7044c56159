package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of a provider call.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport_error"
	OutcomeProtocol  = "protocol_error"
	OutcomeDecode    = "decode_error"
)

// Provider metrics
var (
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_requests_total",
		Help: "Provider calls by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provider_request_duration_seconds",
		Help:    "Latency of provider calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Aggregation metrics
var (
	MetadataLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balance_metadata_lookups_total",
		Help: "Token metadata lookups issued while aggregating balances",
	})

	AggregationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregation_failures_total",
		Help: "Wallet queries aborted by a failed dependent call",
	}, []string{"aggregator"})
)

// HTTP metrics
var RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "http_rate_limited_requests_total",
	Help: "Inbound requests rejected by the per-client rate limiter",
})
