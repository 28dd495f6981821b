package facdir

// ListingParser extracts summary records from a directory listing page.
type ListingParser interface {
	// ParseListing returns one record per listed person, in page order.
	// Only Name, ProfileLink, Title and Email are populated.
	// Relative profile links are resolved against pageURL.
	ParseListing(html string, pageURL string) ([]*Record, error)
}

// ProfileParser extracts extended fields from an individual profile page.
type ProfileParser interface {
	// ParseProfile returns the research, website and title found on the
	// page. Missing research is NotListed; a missing website is profileURL.
	ParseProfile(html string, profileURL string) (*Profile, error)
}
