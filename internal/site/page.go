package site

import (
	"strconv"
	"time"

	"github.com/vilaca/gh-portfolio/internal/config"
	"github.com/vilaca/gh-portfolio/internal/domain"
	"github.com/vilaca/gh-portfolio/internal/service"
)

const (
	LoadingProjectsMessage  = "Loading projects..."
	EmptyProjectsMessage    = "No public projects found."
	FallbackProjectsMessage = "Unable to load projects. Please visit my GitHub profile directly."
)

// Page holds the content of every named region of the portfolio page.
// A Page starts with placeholder content and is filled in by a PageBuilder.
type Page struct {
	Title    string         `json:"title"`
	Tagline  string         `json:"tagline,omitempty"`
	Profile  ProfileRegion  `json:"profile"`
	Projects ProjectsRegion `json:"projects"`
	Nav      *NavRegion     `json:"nav,omitempty"` // nil when the page has no navigation
	ShowYear bool           `json:"show_year"`
	Year     string         `json:"year,omitempty"`
}

// ProfileRegion holds the profile summary regions.
type ProfileRegion struct {
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	ReposCount     string `json:"repos_count"`
	FollowersCount string `json:"followers_count"`
	FollowingCount string `json:"following_count"`
}

// ProjectsRegion is the projects grid and its loading indicator.
type ProjectsRegion struct {
	Loading      *LoadingIndicator    `json:"loading,omitempty"` // nil once removed
	EmptyMessage string               `json:"empty_message,omitempty"`
	Cards        []domain.ProjectCard `json:"cards"`
}

// LoadingIndicator is the placeholder shown until the repository list is known.
type LoadingIndicator struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// NewPage returns a page holding only the placeholder content from site.
func NewPage(site config.SiteConfig) *Page {
	return &Page{
		Title:   site.Title,
		Tagline: site.Tagline,
		Profile: ProfileRegion{
			Name:           site.Placeholders.Name,
			Bio:            site.Placeholders.Bio,
			AvatarURL:      site.Placeholders.AvatarURL,
			ReposCount:     site.Placeholders.Count,
			FollowersCount: site.Placeholders.Count,
			FollowingCount: site.Placeholders.Count,
		},
		Projects: ProjectsRegion{
			Loading: &LoadingIndicator{Text: LoadingProjectsMessage},
			Cards:   []domain.ProjectCard{},
		},
		ShowYear: site.YearEnabled(),
	}
}

// ApplyProfile writes a fetched profile into the profile regions.
// A nil profile (failed fetch) leaves every region untouched. Text fields are
// only written when present; counters are always written.
func (p *Page) ApplyProfile(profile *domain.UserProfile) {
	if profile == nil {
		return
	}

	if profile.DisplayName != "" {
		p.Profile.Name = profile.DisplayName
	}
	if profile.Biography != "" {
		p.Profile.Bio = profile.Biography
	}
	if profile.AvatarURL != "" {
		p.Profile.AvatarURL = profile.AvatarURL
	}
	p.Profile.ReposCount = strconv.Itoa(profile.PublicRepos)
	p.Profile.FollowersCount = strconv.Itoa(profile.Followers)
	p.Profile.FollowingCount = strconv.Itoa(profile.Following)
}

// ApplyRepositories writes a repository result into the projects grid.
// On failure the loading indicator is rewritten to point at profileURL and no
// cards are added. On success the indicator is removed first.
func (p *Page) ApplyRepositories(result service.RepositoryResult, profileURL string) {
	if result.Err != nil {
		// Only one result is applied per page, so the indicator is still present here.
		if p.Projects.Loading != nil {
			p.Projects.Loading.Text = FallbackProjectsMessage
			p.Projects.Loading.Link = profileURL
		}
		return
	}

	p.Projects.Loading = nil

	if len(result.Cards) == 0 {
		p.Projects.EmptyMessage = EmptyProjectsMessage
		return
	}

	p.Projects.Cards = append(p.Projects.Cards, result.Cards...)
}

// StampYear sets the footer year from now, if the page shows one.
func (p *Page) StampYear(now time.Time) {
	if !p.ShowYear {
		return
	}
	p.Year = strconv.Itoa(now.Year())
}
