package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for GitHubRequestsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	GitHubRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_github_requests_total",
			Help: "Total number of GitHub API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// RecordGitHubRequest counts one GitHub API call.
func RecordGitHubRequest(endpoint string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	GitHubRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}
