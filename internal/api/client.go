package api

import (
	"context"
	"fmt"

	"github.com/vilaca/gh-portfolio/internal/domain"
)

// Client defines the interface for the source of portfolio data.
// This follows Interface Segregation Principle - small, focused interface.
// Allows dependency inversion - consumers depend on this interface, not concrete implementations.
type Client interface {
	// GetProfile returns the public profile of the given account.
	GetProfile(ctx context.Context, username string) (*domain.UserProfile, error)

	// GetRepositories returns up to perPage public repositories of the account,
	// most recently updated first.
	GetRepositories(ctx context.Context, username string, perPage int) ([]domain.Repository, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL string
}

// StatusError is returned when the API answers with a non-OK status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}
