package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vilaca/gh-portfolio/internal/domain"
)

// Renderer handles rendering responses to HTTP clients.
// This interface follows Interface Segregation Principle (SOLID-I).
type Renderer interface {
	RenderPage(w io.Writer, page *Page) error
	RenderPageJSON(w io.Writer, page *Page) error
	RenderHealth(w io.Writer) error
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	// All HTML is embedded in methods, no external templates needed
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

func (r *HTMLRenderer) RenderPageJSON(w io.Writer, page *Page) error {
	return json.NewEncoder(w).Encode(page)
}

func (r *HTMLRenderer) RenderPage(w io.Writer, page *Page) error {
	_, err := io.WriteString(w, r.buildPageHTML(page))
	return err
}

// buildPageHTML constructs the full portfolio page.
// Follows SLAP - operates at single level of abstraction.
func (r *HTMLRenderer) buildPageHTML(page *Page) string {
	var sb strings.Builder

	sb.WriteString(htmlHead(page.Title, page.Tagline))
	sb.WriteString("\n<body>\n")
	r.writeHeader(&sb, page)
	sb.WriteString("\t<main class=\"container\">\n")
	r.writeProfile(&sb, page.Profile)
	r.writeProjects(&sb, page.Projects)
	sb.WriteString("\t</main>\n")
	r.writeFooter(&sb, page)
	sb.WriteString(htmlFooter(page.Nav != nil))

	return sb.String()
}

// writeHeader writes the brand, the nav toggle control and the links container.
func (r *HTMLRenderer) writeHeader(sb *strings.Builder, page *Page) {
	sb.WriteString("\t<header class=\"site-header\">\n")
	sb.WriteString(fmt.Sprintf("\t\t<a class=\"brand\" href=\"/\">%s</a>\n", escapeHTML(page.Title)))

	if nav := page.Nav; nav != nil {
		linksClass := "nav-links"
		if nav.Active {
			linksClass += " active"
		}

		sb.WriteString(fmt.Sprintf("\t\t<a class=\"nav-toggle\" href=\"%s\" aria-label=\"Toggle navigation\" aria-expanded=\"%t\">&#9776;</a>\n",
			escapeHTML(nav.ToggleHref), nav.Active))
		sb.WriteString(fmt.Sprintf("\t\t<nav class=\"%s\">\n", linksClass))
		for _, link := range nav.Links {
			sb.WriteString(fmt.Sprintf("\t\t\t<a href=\"%s\">%s</a>\n", escapeHTML(safeURL(link.Href)), escapeHTML(link.Label)))
		}
		sb.WriteString("\t\t</nav>\n")
	}

	sb.WriteString("\t\t<button class=\"theme-toggle\" onclick=\"toggleTheme()\" aria-label=\"Toggle theme\">🌙</button>\n")
	sb.WriteString("\t</header>\n")
}

// writeProfile writes the avatar, name, bio and counters.
func (r *HTMLRenderer) writeProfile(sb *strings.Builder, profile ProfileRegion) {
	avatar := `<img id="avatar" class="avatar" alt="Avatar">`
	if profile.AvatarURL != "" {
		avatar = fmt.Sprintf(`<img id="avatar" class="avatar" src="%s" alt="Avatar">`, escapeHTML(safeURL(profile.AvatarURL)))
	}

	sb.WriteString(fmt.Sprintf(`		<section id="about" class="profile">
			%s
			<div>
				<h1 id="name">%s</h1>
				<p id="bio">%s</p>
				<ul class="stats">
					<li><strong id="repos-count">%s</strong> repositories</li>
					<li><strong id="followers-count">%s</strong> followers</li>
					<li><strong id="following-count">%s</strong> following</li>
				</ul>
			</div>
		</section>
`, avatar, escapeHTML(profile.Name), escapeHTML(profile.Bio),
		escapeHTML(profile.ReposCount), escapeHTML(profile.FollowersCount), escapeHTML(profile.FollowingCount)))
}

// writeProjects writes the projects grid: the loading indicator (if still
// present), the empty-state message, or one card per project.
func (r *HTMLRenderer) writeProjects(sb *strings.Builder, projects ProjectsRegion) {
	sb.WriteString(`		<section id="projects" class="projects">
			<h2>Projects</h2>
			<div id="projects-grid" class="projects-grid">
`)

	if loading := projects.Loading; loading != nil {
		text := escapeHTML(loading.Text)
		if loading.Link != "" {
			text += " " + externalLink(loading.Link, loading.Link)
		}
		sb.WriteString(fmt.Sprintf("\t\t\t\t<p id=\"projects-loading\" class=\"loading\">%s</p>\n", text))
	}

	if projects.EmptyMessage != "" {
		sb.WriteString(fmt.Sprintf("\t\t\t\t<p class=\"loading\">%s</p>\n", escapeHTML(projects.EmptyMessage)))
	}

	for _, card := range projects.Cards {
		r.writeProjectCard(sb, card)
	}

	sb.WriteString(`			</div>
		</section>
`)
}

// writeProjectCard writes a single project card to the string builder.
// Optional rows are omitted entirely when empty.
func (r *HTMLRenderer) writeProjectCard(sb *strings.Builder, card domain.ProjectCard) {
	description := ""
	if card.Description != "" {
		description = fmt.Sprintf("\n\t\t\t\t\t<p class=\"project-card-desc\">%s</p>", escapeHTML(card.Description))
	}

	topics := ""
	if len(card.Topics) > 0 {
		var tags strings.Builder
		for _, topic := range card.Topics {
			tags.WriteString(fmt.Sprintf(`<span class="topic-tag">%s</span>`, escapeHTML(topic)))
		}
		topics = fmt.Sprintf("\n\t\t\t\t\t<div class=\"project-card-topics\">%s</div>", tags.String())
	}

	language := ""
	if card.Language != nil {
		language = fmt.Sprintf(`<span><span class="lang-dot" style="background:%s"></span> %s</span>`,
			escapeHTML(card.Language.Color), escapeHTML(card.Language.Name))
	}

	sb.WriteString(fmt.Sprintf(`				<div class="project-card">
					<div class="project-card-header">
						<h3 class="project-card-title">%s</h3>
					</div>%s%s
					<div class="project-card-meta">
						%s
						<span>⭐ %d</span>
						<span>🍴 %d</span>
					</div>
				</div>
`, externalLink(card.URL, card.Name), description, topics, language, card.Stars, card.Forks))
}

// writeFooter writes the copyright line with the year element.
func (r *HTMLRenderer) writeFooter(sb *strings.Builder, page *Page) {
	if !page.ShowYear {
		sb.WriteString("\t<footer></footer>\n")
		return
	}
	sb.WriteString(fmt.Sprintf("\t<footer>&copy; <span id=\"year\">%s</span> %s</footer>\n",
		escapeHTML(page.Year), escapeHTML(page.Title)))
}
