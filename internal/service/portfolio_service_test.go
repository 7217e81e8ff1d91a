package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/vilaca/gh-portfolio/internal/api"
	"github.com/vilaca/gh-portfolio/internal/domain"
)

// mockClient is a test double for api.Client.
// Follows FIRST principles - Independent tests.
type mockClient struct {
	getProfileFunc      func(ctx context.Context, username string) (*domain.UserProfile, error)
	getRepositoriesFunc func(ctx context.Context, username string, perPage int) ([]domain.Repository, error)
}

func (m *mockClient) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, username)
	}
	return &domain.UserProfile{}, nil
}

func (m *mockClient) GetRepositories(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
	if m.getRepositoriesFunc != nil {
		return m.getRepositoriesFunc(ctx, username, perPage)
	}
	return nil, nil
}

// mockLogger is a test double for Logger.
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	infos    []string
}

func (m *mockLogger) Printf(format string, v ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(format, v...))
}

func (m *mockLogger) Warnf(format string, v ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprintf(format, v...))
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// TestFilterRepositories tests the exclusion rules.
// Follows AAA pattern.
func TestFilterRepositories(t *testing.T) {
	// Arrange
	repos := []domain.Repository{
		{Name: "keep-me"},
		{Name: "a-fork", IsFork: true},
		{Name: "adibmz"},
		{Name: "adibmz.github.io"},
		{Name: "adibmz-tools"},
	}

	// Act
	filtered := FilterRepositories(repos, "adibmz")

	// Assert
	if len(filtered) != 2 {
		t.Fatalf("expected 2 repositories, got %d: %+v", len(filtered), filtered)
	}
	if filtered[0].Name != "keep-me" || filtered[1].Name != "adibmz-tools" {
		t.Errorf("unexpected survivors %q, %q", filtered[0].Name, filtered[1].Name)
	}
}

// TestSortRepositories tests ordering by stars then recency.
func TestSortRepositories(t *testing.T) {
	// Arrange
	repos := []domain.Repository{
		{Name: "old-popular", Stars: 5, UpdatedAt: day(1)},
		{Name: "unpopular", Stars: 0, UpdatedAt: day(20)},
		{Name: "new-popular", Stars: 5, UpdatedAt: day(10)},
		{Name: "most-popular", Stars: 9, UpdatedAt: day(2)},
	}

	// Act
	SortRepositories(repos)

	// Assert
	want := []string{"most-popular", "new-popular", "old-popular", "unpopular"}
	for i, name := range want {
		if repos[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, repos[i].Name)
		}
	}

	for i := 1; i < len(repos); i++ {
		a, b := repos[i-1], repos[i]
		if a.Stars < b.Stars || (a.Stars == b.Stars && a.UpdatedAt.Before(b.UpdatedAt)) {
			t.Errorf("order violated between %s and %s", a.Name, b.Name)
		}
	}
}

// TestSortRepositories_FullTieIsStable tests that equal entries keep API order.
func TestSortRepositories_FullTieIsStable(t *testing.T) {
	// Arrange
	repos := []domain.Repository{
		{Name: "first", Stars: 1, UpdatedAt: day(3)},
		{Name: "second", Stars: 1, UpdatedAt: day(3)},
	}

	// Act
	SortRepositories(repos)

	// Assert
	if repos[0].Name != "first" || repos[1].Name != "second" {
		t.Errorf("expected stable order, got %s, %s", repos[0].Name, repos[1].Name)
	}
}

// TestBuildProjectCards tests the projection to view models.
func TestBuildProjectCards(t *testing.T) {
	// Arrange
	repos := []domain.Repository{
		{
			Name:     "many-topics",
			URL:      "https://github.com/adibmz/many-topics",
			Language: "Rust",
			Topics:   []string{"a", "b", "c", "d", "e", "f", "g"},
			Stars:    3,
			Forks:    2,
		},
		{
			Name:        "plain",
			Description: "No language here",
			Topics:      []string{},
		},
		{
			Name:     "known-language",
			Language: "Python",
			Topics:   []string{"ml", "data"},
		},
	}

	// Act
	cards := BuildProjectCards(repos, domain.DefaultLanguageColors())

	// Assert
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}

	if len(cards[0].Topics) != domain.MaxTopicsPerCard {
		t.Errorf("expected topics capped at %d, got %d", domain.MaxTopicsPerCard, len(cards[0].Topics))
	}
	if cards[0].Topics[4] != "e" {
		t.Errorf("expected first five topics in order, got %v", cards[0].Topics)
	}
	if cards[0].Language == nil || cards[0].Language.Color != domain.FallbackLanguageColor {
		t.Errorf("expected Rust to use fallback color, got %+v", cards[0].Language)
	}
	if cards[0].Stars != 3 || cards[0].Forks != 2 {
		t.Errorf("unexpected counts %d/%d", cards[0].Stars, cards[0].Forks)
	}

	if cards[1].Language != nil {
		t.Errorf("expected no language badge, got %+v", cards[1].Language)
	}
	if len(cards[1].Topics) != 0 {
		t.Errorf("expected no topics, got %v", cards[1].Topics)
	}

	if len(cards[2].Topics) != 2 {
		t.Errorf("expected min(5, 2) topics, got %d", len(cards[2].Topics))
	}
	if cards[2].Language.Color != "#3572A5" {
		t.Errorf("expected Python color, got %s", cards[2].Language.Color)
	}
}

// TestFetchProfile_Failure tests that profile failures are only logged.
func TestFetchProfile_Failure(t *testing.T) {
	// Arrange
	logger := &mockLogger{}
	client := &mockClient{
		getProfileFunc: func(ctx context.Context, username string) (*domain.UserProfile, error) {
			return nil, &api.StatusError{StatusCode: 500}
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), logger)

	// Act
	profile := svc.FetchProfile(context.Background())

	// Assert
	if profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
	if len(logger.warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(logger.warnings))
	}
}

// TestFetchRepositories tests the full fetch, filter, sort and projection path.
func TestFetchRepositories(t *testing.T) {
	// Arrange
	var gotUser string
	var gotPerPage int
	client := &mockClient{
		getRepositoriesFunc: func(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
			gotUser, gotPerPage = username, perPage
			return []domain.Repository{
				{Name: "older", Stars: 2, UpdatedAt: day(1)},
				{Name: "fork", Stars: 100, IsFork: true},
				{Name: "newer", Stars: 2, UpdatedAt: day(9)},
			}, nil
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), &mockLogger{})

	// Act
	result := svc.FetchRepositories(context.Background())

	// Assert
	if result.Err != nil {
		t.Fatalf("expected no error, got %v", result.Err)
	}
	if gotUser != "adibmz" || gotPerPage != 30 {
		t.Errorf("expected request for adibmz with 30 per page, got %s/%d", gotUser, gotPerPage)
	}
	if len(result.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(result.Cards))
	}
	if result.Cards[0].Name != "newer" {
		t.Errorf("expected more recently updated repository first, got %s", result.Cards[0].Name)
	}
}

// TestFetchRepositories_AllExcluded tests that an all-excluded list is empty, not an error.
func TestFetchRepositories_AllExcluded(t *testing.T) {
	// Arrange
	client := &mockClient{
		getRepositoriesFunc: func(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
			return []domain.Repository{
				{Name: "something", IsFork: true},
				{Name: "adibmz"},
			}, nil
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), &mockLogger{})

	// Act
	result := svc.FetchRepositories(context.Background())

	// Assert
	if result.Err != nil {
		t.Fatalf("expected no error, got %v", result.Err)
	}
	if len(result.Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(result.Cards))
	}
}

// TestFetchRepositories_Failure tests that failures carry the error and no cards.
func TestFetchRepositories_Failure(t *testing.T) {
	// Arrange
	logger := &mockLogger{}
	client := &mockClient{
		getRepositoriesFunc: func(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
			return nil, &api.StatusError{StatusCode: 500}
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), logger)

	// Act
	result := svc.FetchRepositories(context.Background())

	// Assert
	var statusErr *api.StatusError
	if !errors.As(result.Err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", result.Err)
	}
	if result.Cards != nil {
		t.Errorf("expected no cards on failure, got %d", len(result.Cards))
	}
	if len(logger.warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(logger.warnings))
	}
}

// TestLoad_IndependentFailures tests that one fetch failing does not affect the other.
func TestLoad_IndependentFailures(t *testing.T) {
	// Arrange
	client := &mockClient{
		getProfileFunc: func(ctx context.Context, username string) (*domain.UserProfile, error) {
			return nil, errors.New("network down")
		},
		getRepositoriesFunc: func(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
			return []domain.Repository{{Name: "survivor"}}, nil
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), &mockLogger{})

	// Act
	snapshot := svc.Load(context.Background())

	// Assert
	if snapshot.Profile != nil {
		t.Errorf("expected nil profile, got %+v", snapshot.Profile)
	}
	if snapshot.Repositories.Err != nil {
		t.Fatalf("expected repositories to succeed, got %v", snapshot.Repositories.Err)
	}
	if len(snapshot.Repositories.Cards) != 1 {
		t.Errorf("expected 1 card, got %d", len(snapshot.Repositories.Cards))
	}
}

// TestLoad_FetchesRunConcurrently tests that neither fetch waits for the other.
func TestLoad_FetchesRunConcurrently(t *testing.T) {
	// Arrange
	profileStarted := make(chan struct{})
	reposStarted := make(chan struct{})
	client := &mockClient{
		getProfileFunc: func(ctx context.Context, username string) (*domain.UserProfile, error) {
			close(profileStarted)
			select {
			case <-reposStarted:
			case <-time.After(5 * time.Second):
				t.Error("repository fetch never started while profile fetch was in flight")
			}
			return &domain.UserProfile{DisplayName: "Adib"}, nil
		},
		getRepositoriesFunc: func(ctx context.Context, username string, perPage int) ([]domain.Repository, error) {
			close(reposStarted)
			select {
			case <-profileStarted:
			case <-time.After(5 * time.Second):
				t.Error("profile fetch never started while repository fetch was in flight")
			}
			return nil, nil
		},
	}
	svc := NewPortfolioService(client, "adibmz", domain.DefaultLanguageColors(), &mockLogger{})

	// Act
	snapshot := svc.Load(context.Background())

	// Assert
	if snapshot.Profile == nil || snapshot.Profile.DisplayName != "Adib" {
		t.Errorf("expected profile to be loaded, got %+v", snapshot.Profile)
	}
}
