package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vilaca/gh-portfolio/internal/domain"
)

// DefaultSiteFile is the site file read when PORTFOLIO_CONFIG is unset.
const DefaultSiteFile = "portfolio.yaml"

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds application configuration.
// Follows Single Responsibility - only holds configuration data.
type Config struct {
	Port     int
	LogLevel string

	// GitHub configuration
	GitHubURL  string
	Username   string
	ProfileURL string

	// Site holds the page settings read from the site file.
	Site SiteConfig

	// LanguageColors is the built-in table merged with the site file's overrides.
	LanguageColors domain.LanguageColorTable
}

// SiteConfig describes the static parts of the page.
type SiteConfig struct {
	Title        string       `yaml:"title"`
	Tagline      string       `yaml:"tagline"`
	Placeholders Placeholders `yaml:"placeholders"`
	NavLinks     []NavLink    `yaml:"nav_links"`
	ShowYear     *bool        `yaml:"show_year"`
}

// Placeholders is the content shown in the profile regions before data arrives.
type Placeholders struct {
	Name      string `yaml:"name"`
	Bio       string `yaml:"bio"`
	AvatarURL string `yaml:"avatar_url"`
	Count     string `yaml:"count"`
}

// NavLink is one entry of the navigation links container.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// YearEnabled reports whether the footer year element is rendered.
func (s SiteConfig) YearEnabled() bool {
	return s.ShowYear == nil || *s.ShowYear
}

// siteFile is the on-disk layout of the site file.
type siteFile struct {
	Site           SiteConfig        `yaml:"site"`
	LanguageColors map[string]string `yaml:"language_colors"`
}

// Load loads configuration from a .env file, the YAML site file and
// environment variables, in that order of precedence (lowest first).
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	username := getEnvOrDefault("GITHUB_USERNAME", domain.DefaultUsername)

	file, err := loadSiteFile(getEnvOrDefault("PORTFOLIO_CONFIG", DefaultSiteFile))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           port,
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		GitHubURL:      strings.TrimSuffix(getEnvOrDefault("GITHUB_URL", "https://api.github.com"), "/"),
		Username:       username,
		ProfileURL:     getEnvOrDefault("PROFILE_URL", "https://github.com/"+username),
		Site:           withSiteDefaults(file.Site, username),
		LanguageColors: domain.DefaultLanguageColors().Merge(file.LanguageColors),
	}

	return cfg, nil
}

// loadSiteFile reads the YAML site file. A missing file yields an empty siteFile.
func loadSiteFile(path string) (*siteFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &siteFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site file %s: %w", path, err)
	}

	var file siteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse site file %s: %w", path, err)
	}

	for lang, color := range file.LanguageColors {
		if !colorPattern.MatchString(color) {
			return nil, fmt.Errorf("invalid color %q for language %q in %s", color, lang, path)
		}
	}

	return &file, nil
}

func withSiteDefaults(site SiteConfig, username string) SiteConfig {
	if site.Title == "" {
		site.Title = username
	}
	if site.Placeholders.Name == "" {
		site.Placeholders.Name = username
	}
	if site.Placeholders.Bio == "" {
		site.Placeholders.Bio = "Developer"
	}
	if site.Placeholders.Count == "" {
		site.Placeholders.Count = "-"
	}
	return site
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
