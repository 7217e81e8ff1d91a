package domain

const (
	// DefaultUsername is the GitHub account shown when none is configured.
	DefaultUsername = "adibmz"

	// MaxTopicsPerCard caps the topic tags shown on a project card.
	MaxTopicsPerCard = 5
)

// ProfileRepositoryName returns the name of the user's GitHub Pages repository.
func ProfileRepositoryName(username string) string {
	return username + ".github.io"
}
