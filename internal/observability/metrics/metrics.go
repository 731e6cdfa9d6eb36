package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "solar_payback_"

	ResultOK            = "ok"
	ResultInvalid       = "invalid_input"
	ResultNotProfitable = "not_profitable"
	ResultError         = "error"
)

var (
	registerOnce sync.Once

	calcRequests *prometheus.CounterVec
	calcLatency  *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
)

// Init registers the calculation and HTTP metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		calcRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Payback/optimal calculations by operation and result",
			},
			[]string{"operation", "result"},
		)
		calcLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "calculation_seconds",
				Help:    "Calculation latency by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by path and status",
			},
			[]string{"path", "status"},
		)
		prometheus.MustRegister(calcRequests, calcLatency, httpRequests)
	})
}

// ObserveCalculation records one engine invocation.
func ObserveCalculation(operation, result string, elapsed time.Duration) {
	if calcRequests == nil {
		return
	}
	calcRequests.WithLabelValues(operation, result).Inc()
	calcLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// GinMiddleware counts requests per route and status.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if httpRequests == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
