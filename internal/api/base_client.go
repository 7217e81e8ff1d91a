package api

import (
	"context"
	"net/http"
)

const (
	// MaxConcurrentRequests limits concurrent API requests to avoid overwhelming the API
	MaxConcurrentRequests = 5
	// RepositoryPageSize is the number of repositories requested per page build
	RepositoryPageSize = 30
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
// Follows Interface Segregation Principle.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseClient contains common fields and functionality for all API clients.
// Follows DRY principle by extracting shared code.
type BaseClient struct {
	BaseURL    string
	HTTPClient HTTPClient
	Semaphore  chan struct{} // Limits concurrent requests
}

// NewBaseClient creates a new base client with rate limiting.
func NewBaseClient(baseURL string, httpClient HTTPClient) *BaseClient {
	return &BaseClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Semaphore:  make(chan struct{}, MaxConcurrentRequests),
	}
}

// DoRateLimited performs an operation with rate limiting via semaphore.
// This method is used by platform-specific clients to wrap API calls.
func (c *BaseClient) DoRateLimited(ctx context.Context, fn func() error) error {
	// Acquire semaphore (rate limiting)
	select {
	case c.Semaphore <- struct{}{}:
		defer func() { <-c.Semaphore }()
	case <-ctx.Done():
		return ctx.Err()
	}

	return fn()
}
