package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request counters and latency, labeled by method, route and status.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundrylink_http_requests_total",
		Help: "Total number of HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laundrylink_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Dependency liveness gauges, flipped by the health probe job.
var (
	DatabaseUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "laundrylink_database_up",
		Help: "Whether the database responded to the last ping (1 = up)",
	})

	RedisUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "laundrylink_redis_up",
		Help: "Whether Redis responded to the last ping (1 = up)",
	})
)

var (
	QuotesExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrylink_quotes_expired_total",
		Help: "Total number of price quotes marked expired by the sweep job",
	})

	ShopOrderEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrylink_shop_order_events_total",
		Help: "Total number of shop order notifications published",
	})
)
