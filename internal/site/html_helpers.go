package site

import (
	"fmt"
	"strings"
)

// htmlHead returns the common HTML head section with proper meta tags.
func htmlHead(title, description string) string {
	if description == "" {
		description = "Personal portfolio and open source projects"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
	<meta name="description" content="%s">

	<!-- Open Graph / Social Media -->
	<meta property="og:type" content="website">
	<meta property="og:title" content="%s">
	<meta property="og:description" content="%s">

	<title>%s</title>
	%s
</head>`, escapeHTML(description), escapeHTML(title), escapeHTML(description), escapeHTML(title), commonCSS())
}

// commonCSS returns the page styles.
func commonCSS() string {
	return `<style>
		/* CSS Variables for theming */
		:root {
			--bg-primary: #f5f5f5;
			--bg-secondary: white;
			--text-primary: #333;
			--text-secondary: #666;
			--link-color: #0066cc;
			--button-bg: #0066cc;
			--button-hover: #0052a3;
			--border-color: #e0e0e0;
			--shadow: rgba(0,0,0,0.1);
			--tag-bg: #ddf4ff;
			--tag-text: #0969da;
		}

		[data-theme="dark"] {
			--bg-primary: #1a1a1a;
			--bg-secondary: #2d2d2d;
			--text-primary: #e0e0e0;
			--text-secondary: #b0b0b0;
			--link-color: #4d9fff;
			--button-bg: #4d9fff;
			--button-hover: #3d89ef;
			--border-color: #404040;
			--shadow: rgba(0,0,0,0.3);
			--tag-bg: #1a3a4a;
			--tag-text: #5dade2;
		}

		* {
			box-sizing: border-box;
			margin: 0;
			padding: 0;
		}

		body {
			font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
			background: var(--bg-primary);
			color: var(--text-primary);
			transition: background-color 0.3s, color 0.3s;
			line-height: 1.6;
		}

		.container {
			max-width: 1100px;
			margin: 0 auto;
			padding: 20px;
		}

		a {
			color: var(--link-color);
			text-decoration: none;
		}

		a:hover {
			text-decoration: underline;
		}

		/* Header and navigation */
		.site-header {
			display: flex;
			align-items: center;
			justify-content: space-between;
			gap: 15px;
			padding: 15px 20px;
			background: var(--bg-secondary);
			box-shadow: 0 2px 4px var(--shadow);
		}

		.brand {
			font-weight: 600;
			font-size: 1.2rem;
			color: var(--text-primary);
		}

		.nav-links {
			display: flex;
			gap: 20px;
		}

		.nav-toggle {
			display: none;
			font-size: 1.5rem;
			color: var(--text-primary);
		}

		.theme-toggle {
			padding: 6px 12px;
			background: var(--button-bg);
			color: white;
			border: none;
			border-radius: 4px;
			cursor: pointer;
			font-size: 14px;
		}

		.theme-toggle:hover {
			background: var(--button-hover);
		}

		@media (max-width: 700px) {
			.nav-toggle {
				display: block;
			}

			.nav-links {
				display: none;
				position: absolute;
				top: 60px;
				left: 0;
				right: 0;
				flex-direction: column;
				padding: 15px 20px;
				background: var(--bg-secondary);
				box-shadow: 0 2px 4px var(--shadow);
			}

			.nav-links.active {
				display: flex;
			}
		}

		/* Profile */
		.profile {
			display: flex;
			align-items: center;
			gap: 30px;
			padding: 40px 0;
		}

		.avatar {
			width: 140px;
			height: 140px;
			border-radius: 50%;
			border: 3px solid var(--border-color);
		}

		.profile h1 {
			font-size: 2rem;
			font-weight: 600;
		}

		.profile p {
			color: var(--text-secondary);
		}

		.stats {
			display: flex;
			gap: 20px;
			list-style: none;
			margin-top: 10px;
			color: var(--text-secondary);
		}

		.stats strong {
			color: var(--text-primary);
		}

		/* Projects */
		.projects h2 {
			margin-bottom: 20px;
		}

		.projects-grid {
			display: grid;
			grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
			gap: 20px;
		}

		.project-card {
			display: flex;
			flex-direction: column;
			gap: 10px;
			background: var(--bg-secondary);
			padding: 20px;
			border-radius: 8px;
			box-shadow: 0 2px 4px var(--shadow);
			border: 1px solid var(--border-color);
		}

		.project-card-title {
			font-size: 1.1rem;
			font-weight: 600;
		}

		.project-card-desc {
			color: var(--text-secondary);
			font-size: 14px;
		}

		.project-card-topics {
			display: flex;
			flex-wrap: wrap;
			gap: 6px;
		}

		.topic-tag {
			background: var(--tag-bg);
			color: var(--tag-text);
			padding: 2px 10px;
			border-radius: 12px;
			font-size: 12px;
		}

		.project-card-meta {
			display: flex;
			gap: 15px;
			margin-top: auto;
			color: var(--text-secondary);
			font-size: 13px;
		}

		.lang-dot {
			display: inline-block;
			width: 10px;
			height: 10px;
			border-radius: 50%;
		}

		.loading {
			grid-column: 1 / -1;
			text-align: center;
			padding: 40px;
			color: var(--text-secondary);
		}

		footer {
			text-align: center;
			padding: 30px 20px;
			color: var(--text-secondary);
			font-size: 14px;
		}
	</style>`
}

// navToggleScript opens and closes the mobile menu without a page reload.
// Links carrying the server-side menu state are reduced to their fragment.
func navToggleScript() string {
	return `<script>
		(function() {
			const toggle = document.querySelector('.nav-toggle');
			const links = document.querySelector('.nav-links');
			if (!toggle || !links) {
				return;
			}

			toggle.addEventListener('click', function(event) {
				event.preventDefault();
				const active = links.classList.toggle('active');
				toggle.setAttribute('aria-expanded', active ? 'true' : 'false');
			});

			links.querySelectorAll('a').forEach(function(link) {
				const href = link.getAttribute('href') || '';
				if (href.indexOf('?menu=') === 0 && link.hash) {
					link.setAttribute('href', link.hash);
				}
				link.addEventListener('click', function() {
					links.classList.remove('active');
					toggle.setAttribute('aria-expanded', 'false');
				});
			});
		})();
	</script>`
}

// themeToggleScript returns the theme toggle JavaScript.
func themeToggleScript() string {
	return `<script>
		function toggleTheme() {
			const html = document.documentElement;
			const currentTheme = html.getAttribute('data-theme');
			const newTheme = currentTheme === 'dark' ? 'light' : 'dark';
			html.setAttribute('data-theme', newTheme);
			localStorage.setItem('theme', newTheme);
			updateToggleButton(newTheme);
		}

		function updateToggleButton(theme) {
			const button = document.querySelector('.theme-toggle');
			if (button) {
				button.textContent = theme === 'dark' ? '☀️' : '🌙';
				button.setAttribute('aria-label', theme === 'dark' ? 'Switch to light mode' : 'Switch to dark mode');
			}
		}

		// Initialize theme from localStorage
		(function() {
			const savedTheme = localStorage.getItem('theme') || 'light';
			document.documentElement.setAttribute('data-theme', savedTheme);
			updateToggleButton(savedTheme);
		})();
	</script>`
}

// htmlFooter closes the document. The nav script is only emitted when the
// page has navigation.
func htmlFooter(withNav bool) string {
	scripts := themeToggleScript()
	if withNav {
		scripts += navToggleScript()
	}
	return scripts + `
</body>
</html>`
}

// escapeHTML escapes special HTML characters to prevent XSS.
func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}

// externalLink creates a safe link opening in a new browsing context that
// cannot reach back to its opener.
func externalLink(url, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		escapeHTML(safeURL(url)), escapeHTML(text))
}

// safeURL drops URLs with a scheme other than http(s) or mailto.
func safeURL(url string) string {
	lower := strings.ToLower(strings.TrimSpace(url))
	if !strings.Contains(lower, ":") {
		return url
	}
	for _, scheme := range []string{"http://", "https://", "mailto:"} {
		if strings.HasPrefix(lower, scheme) {
			return url
		}
	}
	return "#"
}
