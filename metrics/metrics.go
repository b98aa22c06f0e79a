package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bikesafe_dataset_load_duration_seconds",
		Help:    "Duration of a full canonical-table load (read, join, derive).",
		Buckets: []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
	})
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bikesafe_dataset_rows",
		Help: "Row count of the canonical accident table.",
	})
	FilterEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikesafe_filter_evaluations_total",
		Help: "Total number of filtered-table recomputations.",
	})
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikesafe_response_cache_hits_total",
		Help: "Total number of responses served from the redis cache.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bikesafe_response_cache_misses_total",
		Help: "Total number of responses recomputed on cache miss.",
	})
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bikesafe_http_requests_total",
		Help: "Total HTTP requests by path and status.",
	}, []string{"path", "status"})
)
