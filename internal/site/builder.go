package site

import (
	"context"
	"time"

	"github.com/vilaca/gh-portfolio/internal/config"
	"github.com/vilaca/gh-portfolio/internal/service"
)

// PortfolioLoader interface for fetching portfolio data (Dependency Inversion Principle).
type PortfolioLoader interface {
	Load(ctx context.Context) service.Snapshot
}

// PageBuilder builds one page per call, fetching fresh data every time.
type PageBuilder struct {
	loader     PortfolioLoader
	site       config.SiteConfig
	profileURL string
	now        func() time.Time
}

// NewPageBuilder creates a new page builder.
func NewPageBuilder(loader PortfolioLoader, site config.SiteConfig, profileURL string) *PageBuilder {
	return &PageBuilder{
		loader:     loader,
		site:       site,
		profileURL: profileURL,
		now:        time.Now,
	}
}

// Build stamps the year, wires the navigation, then loads the profile and
// repositories (concurrently) and applies both results.
func (b *PageBuilder) Build(ctx context.Context, menu NavMenu) *Page {
	page := NewPage(b.site)

	page.StampYear(b.now())
	page.WireNav(b.site.NavLinks, menu)

	snapshot := b.loader.Load(ctx)
	page.ApplyProfile(snapshot.Profile)
	page.ApplyRepositories(snapshot.Repositories, b.profileURL)

	return page
}
