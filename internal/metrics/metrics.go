package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// syncRuns counts finished catalog sync runs by outcome.
	syncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_sync_runs_total",
		Help: "Total number of catalog sync runs by outcome",
	}, []string{"outcome"}) // outcome: completed, error

	// syncCards counts catalog records handled by the sync engine.
	syncCards = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_sync_cards_total",
		Help: "Total number of catalog records processed by result",
	}, []string{"result"}) // result: inserted, updated, failed

	syncPageDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tcg_sync_page_duration_seconds",
		Help:    "Time taken to fetch and upsert one catalog page",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})

	syncPageFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tcg_sync_page_failures_total",
		Help: "Total number of catalog pages that could not be fetched",
	})

	syncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tcg_sync_duration_seconds",
		Help:    "Wall time of a full catalog sync run",
		Buckets: []float64{10, 30, 60, 120, 300, 600, 1200},
	})

	// apiRequests tracks calls to the external catalog API.
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_catalog_api_requests_total",
		Help: "Total number of catalog API requests by status code",
	}, []string{"code"})

	apiRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tcg_catalog_api_request_duration_seconds",
		Help:    "Latency of catalog API requests",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_http_requests_total",
		Help: "Total number of HTTP requests served by route and status code",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tcg_http_request_duration_seconds",
		Help:    "Latency of HTTP requests served",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	searchCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_search_cache_total",
		Help: "Live search cache lookups by result",
	}, []string{"result"}) // result: hit, miss
)

// ObserveSyncRun records a finished sync run
func ObserveSyncRun(outcome string, d time.Duration) {
	syncRuns.WithLabelValues(outcome).Inc()
	syncDuration.Observe(d.Seconds())
}

// ObserveSyncCard records one processed catalog record
func ObserveSyncCard(result string) {
	syncCards.WithLabelValues(result).Inc()
}

// ObserveSyncPage records the time spent on one page
func ObserveSyncPage(d time.Duration, failed bool) {
	syncPageDuration.Observe(d.Seconds())
	if failed {
		syncPageFailures.Inc()
	}
}

// ObserveAPIRequest records one catalog API round trip; code 0 means a transport error
func ObserveAPIRequest(code int, d time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	apiRequests.WithLabelValues(label).Inc()
	apiRequestDuration.Observe(d.Seconds())
}

// ObserveSearchCache records a live search cache lookup
func ObserveSearchCache(hit bool) {
	if hit {
		searchCache.WithLabelValues("hit").Inc()
		return
	}
	searchCache.WithLabelValues("miss").Inc()
}

// ObserveHTTPRequest records one served HTTP request; route is the matched
// pattern so cardinality stays bounded
func ObserveHTTPRequest(method, route string, code int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
