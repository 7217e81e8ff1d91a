package service

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/vilaca/gh-portfolio/internal/api"
	"github.com/vilaca/gh-portfolio/internal/domain"
	"github.com/vilaca/gh-portfolio/internal/observability"
)

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// RepositoryResult is the outcome of a repository fetch.
// Err is set on failure, in which case Cards is always nil.
type RepositoryResult struct {
	Cards []domain.ProjectCard
	Err   error
}

// Snapshot holds the results of one page build's two fetches.
type Snapshot struct {
	Profile      *domain.UserProfile // nil when the profile fetch failed
	Repositories RepositoryResult
}

// PortfolioService handles business logic for portfolio data.
// Follows Single Responsibility Principle - orchestrates fetch, filter, sort and projection.
type PortfolioService struct {
	client   api.Client
	username string
	colors   domain.LanguageColorTable
	logger   Logger
}

// NewPortfolioService creates a new portfolio service.
// Follows Dependency Injection - accepts dependencies via constructor.
func NewPortfolioService(client api.Client, username string, colors domain.LanguageColorTable, logger Logger) *PortfolioService {
	return &PortfolioService{
		client:   client,
		username: username,
		colors:   colors,
		logger:   logger,
	}
}

// Load runs the profile and repository fetches concurrently.
// Neither fetch reports an error to the group, so one failing never cancels
// or delays the other.
func (s *PortfolioService) Load(ctx context.Context) Snapshot {
	var snapshot Snapshot
	var g errgroup.Group

	g.Go(func() error {
		snapshot.Profile = s.FetchProfile(ctx)
		return nil
	})
	g.Go(func() error {
		snapshot.Repositories = s.FetchRepositories(ctx)
		return nil
	})

	_ = g.Wait()
	return snapshot
}

// FetchProfile retrieves the account's profile.
// Failures are logged and reported as a nil profile; they are never surfaced to the caller.
func (s *PortfolioService) FetchProfile(ctx context.Context) *domain.UserProfile {
	profile, err := s.client.GetProfile(ctx, s.username)
	observability.RecordGitHubRequest("profile", err)
	if err != nil {
		s.logger.Warnf("Could not fetch GitHub profile: %v", err)
		return nil
	}
	return profile
}

// FetchRepositories retrieves, filters, sorts and projects the account's repositories.
func (s *PortfolioService) FetchRepositories(ctx context.Context) RepositoryResult {
	repos, err := s.client.GetRepositories(ctx, s.username, api.RepositoryPageSize)
	observability.RecordGitHubRequest("repos", err)
	if err != nil {
		s.logger.Warnf("Could not fetch GitHub repos: %v", err)
		return RepositoryResult{Err: err}
	}

	filtered := FilterRepositories(repos, s.username)
	SortRepositories(filtered)

	s.logger.Printf("fetched %d repositories, showing %d", len(repos), len(filtered))

	return RepositoryResult{Cards: BuildProjectCards(filtered, s.colors)}
}

// FilterRepositories drops forks and the user's profile repositories
// (named after the account, or the account's GitHub Pages site).
func FilterRepositories(repos []domain.Repository, username string) []domain.Repository {
	pagesRepo := domain.ProfileRepositoryName(username)

	result := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.IsFork || repo.Name == username || repo.Name == pagesRepo {
			continue
		}
		result = append(result, repo)
	}
	return result
}

// SortRepositories orders repos by stars descending, then by last update descending.
// Full ties keep their original order.
func SortRepositories(repos []domain.Repository) {
	slices.SortStableFunc(repos, func(a, b domain.Repository) int {
		if a.Stars != b.Stars {
			return b.Stars - a.Stars
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
}

// BuildProjectCards projects repositories into display cards.
func BuildProjectCards(repos []domain.Repository, colors domain.LanguageColorTable) []domain.ProjectCard {
	cards := make([]domain.ProjectCard, 0, len(repos))
	for _, repo := range repos {
		card := domain.ProjectCard{
			Name:        repo.Name,
			URL:         repo.URL,
			Description: repo.Description,
			Topics:      firstTopics(repo.Topics),
			Stars:       repo.Stars,
			Forks:       repo.Forks,
		}
		if repo.Language != "" {
			card.Language = &domain.LanguageBadge{
				Name:  repo.Language,
				Color: colors.ColorFor(repo.Language),
			}
		}
		cards = append(cards, card)
	}
	return cards
}

func firstTopics(topics []string) []string {
	if len(topics) > domain.MaxTopicsPerCard {
		topics = topics[:domain.MaxTopicsPerCard]
	}
	return slices.Clone(topics)
}
