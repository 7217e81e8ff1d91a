package site

import (
	"strings"

	"github.com/vilaca/gh-portfolio/internal/config"
)

// menuParam is the query parameter carrying the menu state for clients without scripting.
const menuParam = "menu"

const (
	menuOpen   = "open"
	menuClosed = "closed"
)

// NavMenu is the open/closed state of the mobile navigation menu.
type NavMenu struct {
	Active bool
}

// ParseNavMenu reads the menu state from a query parameter value.
func ParseNavMenu(value string) NavMenu {
	return NavMenu{Active: value == menuOpen}
}

// Toggle flips the menu state.
func (m *NavMenu) Toggle() {
	m.Active = !m.Active
}

// Close forces the menu closed regardless of its current state.
func (m *NavMenu) Close() {
	m.Active = false
}

// ToggleHref is the toggle control's target: the page with the flipped state.
func (m NavMenu) ToggleHref() string {
	next := m
	next.Toggle()
	return next.query()
}

// LinkHref is the target of a nav link. While the menu is open, in-page links
// carry the closed state so following one closes the menu.
func (m NavMenu) LinkHref(href string) string {
	if !m.Active || !strings.HasPrefix(href, "#") {
		return href
	}
	closed := m
	closed.Close()
	return closed.query() + href
}

func (m NavMenu) query() string {
	state := menuClosed
	if m.Active {
		state = menuOpen
	}
	return "?" + menuParam + "=" + state
}

// NavRegion is the rendered toggle control and links container.
type NavRegion struct {
	Active     bool          `json:"active"`
	ToggleHref string        `json:"toggle_href"`
	Links      []NavLinkView `json:"links"`
}

// NavLinkView is one rendered navigation link.
type NavLinkView struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// WireNav attaches the navigation to the page. Without links there is
// neither a links container nor a toggle, and the page has no navigation.
func (p *Page) WireNav(links []config.NavLink, menu NavMenu) {
	if len(links) == 0 {
		return
	}

	views := make([]NavLinkView, 0, len(links))
	for _, link := range links {
		views = append(views, NavLinkView{
			Label: link.Label,
			Href:  menu.LinkHref(link.Href),
		})
	}

	p.Nav = &NavRegion{
		Active:     menu.Active,
		ToggleHref: menu.ToggleHref(),
		Links:      views,
	}
}
