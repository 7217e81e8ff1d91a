package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetricsMiddleware tests that served requests are counted by route pattern.
func TestMetricsMiddleware(t *testing.T) {
	// Arrange
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	counter := HttpRequestsTotal.WithLabelValues(http.MethodGet, "/api/health", "200")
	before := testutil.ToFloat64(counter)

	// Act
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	// Assert
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected counter to increase by 1, got %v", got)
	}
}

// TestRecordGitHubRequest tests outcome labelling.
func TestRecordGitHubRequest(t *testing.T) {
	// Arrange
	okCounter := GitHubRequestsTotal.WithLabelValues("profile", OutcomeOK)
	errCounter := GitHubRequestsTotal.WithLabelValues("profile", OutcomeError)
	okBefore := testutil.ToFloat64(okCounter)
	errBefore := testutil.ToFloat64(errCounter)

	// Act
	RecordGitHubRequest("profile", nil)
	RecordGitHubRequest("profile", http.ErrHandlerTimeout)

	// Assert
	if got := testutil.ToFloat64(okCounter) - okBefore; got != 1 {
		t.Errorf("expected 1 ok request, got %v", got)
	}
	if got := testutil.ToFloat64(errCounter) - errBefore; got != 1 {
		t.Errorf("expected 1 failed request, got %v", got)
	}
}
