package domain

// UserProfile represents the public profile of a GitHub account.
// Empty strings mean the field was absent (or null) in the API response.
type UserProfile struct {
	DisplayName string
	Biography   string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
}
