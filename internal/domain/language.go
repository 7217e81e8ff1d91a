package domain

// FallbackLanguageColor is used for languages missing from the color table.
const FallbackLanguageColor = "#8b949e"

// LanguageColorTable maps a language name to its display color.
// A table is built once at startup and only read afterwards.
type LanguageColorTable map[string]string

// DefaultLanguageColors returns a fresh copy of the built-in table
// (a subset of GitHub linguist colors).
func DefaultLanguageColors() LanguageColorTable {
	return LanguageColorTable{
		"JavaScript": "#f1e05a",
		"TypeScript": "#3178c6",
		"HTML":       "#e34c26",
		"CSS":        "#563d7c",
		"EJS":        "#a91e50",
		"PHP":        "#4F5D95",
		"Python":     "#3572A5",
		"Shell":      "#89e051",
		"Dockerfile": "#384d54",
	}
}

// ColorFor returns the color for language, or FallbackLanguageColor if unknown.
func (t LanguageColorTable) ColorFor(language string) string {
	if color, ok := t[language]; ok && color != "" {
		return color
	}
	return FallbackLanguageColor
}

// Merge returns a new table holding t overlaid with overrides.
func (t LanguageColorTable) Merge(overrides map[string]string) LanguageColorTable {
	merged := make(LanguageColorTable, len(t)+len(overrides))
	for lang, color := range t {
		merged[lang] = color
	}
	for lang, color := range overrides {
		merged[lang] = color
	}
	return merged
}
