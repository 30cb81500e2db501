package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesGenerated counts document generation attempts by format and result.
	QuotesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "configurator_quotes_generated_total",
		Help: "Total number of quote documents generated by format and result",
	}, []string{"format", "result"})

	// QuoteTotalEuros tracks the distribution of quoted totals.
	QuoteTotalEuros = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "configurator_quote_total_euros",
		Help:    "Total price of generated quotes in euros",
		Buckets: []float64{20, 40, 60, 80, 100, 125, 150, 200, 300},
	})

	// QuoteRenderDuration tracks how long rendering a document takes.
	QuoteRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "configurator_quote_render_duration_seconds",
		Help:    "Time taken to render a quote document",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"format"})

	// HTTPRequests counts handled HTTP requests by route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "configurator_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "configurator_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Result labels for QuotesGenerated
const (
	ResultSuccess     = "success"
	ResultInvalid     = "invalid"
	ResultWriteFailed = "write_failed"
	ResultError       = "error"
)

// RecordQuote records the outcome of one generation attempt.
func RecordQuote(format, result string, total int) {
	QuotesGenerated.WithLabelValues(format, result).Inc()
	if result == ResultSuccess {
		QuoteTotalEuros.Observe(float64(total))
	}
}

// ObserveRender records the render duration for a format.
func ObserveRender(format string, duration time.Duration) {
	QuoteRenderDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
