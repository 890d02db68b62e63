package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpotCacheRefreshes result: ok / fetch_error / write_error / canceled
	SpotCacheRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_cache_refreshes_total",
			Help: "Background refreshes of the remote spot collection by result",
		},
		[]string{"result"},
	)

	SpotCacheDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spot_cache_documents",
			Help: "Remote spot documents currently held in memory",
		},
	)

	SpotCacheRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spot_cache_refresh_duration_seconds",
			Help:    "Duration of remote spot collection fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	SpotListRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_list_requests_total",
			Help: "Spot list requests by category and auth state",
		},
		[]string{"category", "authenticated"},
	)

	// RecommendRequests result: ok / invalid / quota / upstream_error
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "AI recommendation submissions by result",
		},
		[]string{"result"},
	)

	CtaAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cta_variant_assignments_total",
			Help: "First-time CTA variant assignments",
		},
		[]string{"variant"},
	)

	MarketingEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketing_events_total",
			Help: "Client analytics events by name and CTA variant",
		},
		[]string{"name", "variant"},
	)
)
