package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vilaca/gh-portfolio/internal/api"
	"github.com/vilaca/gh-portfolio/internal/domain"
)

// Client implements api.Client for the public GitHub REST API.
// Follows Single Responsibility Principle - only handles GitHub API communication.
// Requests are unauthenticated and therefore subject to GitHub's anonymous rate limits.
type Client struct {
	*api.BaseClient
}

// NewClient creates a new GitHub client.
// Uses dependency injection for HTTPClient (IoC).
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	return &Client{
		BaseClient: api.NewBaseClient(baseURL, httpClient),
	}
}

// GetProfile retrieves the public profile of a user.
func (c *Client) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(username))

	var user githubUser
	if err := c.doRequest(ctx, endpoint, &user); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return convertProfile(user), nil
}

// GetRepositories retrieves a user's public repositories, most recently updated first.
func (c *Client) GetRepositories(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", fmt.Sprintf("%d", perPage))
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.BaseURL, url.PathEscape(username), query.Encode())

	var ghRepos []githubRepository
	if err := c.doRequest(ctx, endpoint, &ghRepos); err != nil {
		return nil, fmt.Errorf("failed to get repositories: %w", err)
	}

	return convertRepositories(ghRepos), nil
}

// doRequest performs an HTTP request to GitHub API.
// Follows Single Level of Abstraction Principle (SLAP).
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	return c.DoRateLimited(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return &api.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		return nil
	})
}

// convertProfile converts a GitHub user to the domain model.
// null and missing fields both end up as zero values.
func convertProfile(user githubUser) *domain.UserProfile {
	return &domain.UserProfile{
		DisplayName: deref(user.Name),
		Biography:   deref(user.Bio),
		AvatarURL:   deref(user.AvatarURL),
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
	}
}

// convertRepositories converts GitHub repositories to domain models.
func convertRepositories(ghRepos []githubRepository) []domain.Repository {
	repos := make([]domain.Repository, 0, len(ghRepos))
	for _, repo := range ghRepos {
		topics := repo.Topics
		if topics == nil {
			topics = []string{}
		}

		repos = append(repos, domain.Repository{
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Description: deref(repo.Description),
			Language:    deref(repo.Language),
			Topics:      topics,
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
			IsFork:      repo.Fork,
			UpdatedAt:   repo.UpdatedAt,
		})
	}
	return repos
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GitHub API response types
type githubUser struct {
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

type githubRepository struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	Language        *string   `json:"language"`
	Topics          []string  `json:"topics"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Fork            bool      `json:"fork"`
	UpdatedAt       time.Time `json:"updated_at"`
}
