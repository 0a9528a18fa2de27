package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleshka4/v4-swap-quoter/internal/apperrors"
)

// Quote outcomes used as label values.
const (
	OutcomeSuccess               = "success"
	OutcomeInvalidArgument       = "invalid_argument"
	OutcomeInsufficientLiquidity = "insufficient_liquidity"
	OutcomeFailed                = "failed"
)

var (
	// total number of quote requests by outcome
	quoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapquoter_quote_requests_total",
			Help: "Total number of quote requests by outcome.",
		},
		[]string{"outcome"},
	)

	// latency of quoter calls that reached the chain
	quoteDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "swapquoter_quote_duration_seconds",
			Help:    "Histogram of quoter call latencies.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// total number of http requests
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapquoter_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "code"},
	)

	// http request latency histogram
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swapquoter_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(quoteRequests)
	prometheus.MustRegister(quoteDuration)
	prometheus.MustRegister(httpRequests)
	prometheus.MustRegister(httpLatency)
}

// Outcome maps a quote error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, apperrors.ErrInsufficientLiquidity):
		return OutcomeInsufficientLiquidity
	default:
		return OutcomeFailed
	}
}

// ObserveQuote counts a quote request and, when it reached the chain,
// records its latency.
func ObserveQuote(err error, took time.Duration) {
	outcome := Outcome(err)
	quoteRequests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalidArgument {
		quoteDuration.Observe(took.Seconds())
	}
}

// ObserveHTTP records one served HTTP request.
func ObserveHTTP(method, path string, code int, took time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
	httpLatency.WithLabelValues(method, path).Observe(took.Seconds())
}
