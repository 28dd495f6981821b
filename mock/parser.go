package mock

import "github.com/fwojciec/facdir"

var _ facdir.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of facdir.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string, pageURL string) ([]*facdir.Record, error)
}

func (p *ListingParser) ParseListing(html string, pageURL string) ([]*facdir.Record, error) {
	return p.ParseListingFn(html, pageURL)
}

var _ facdir.ProfileParser = (*ProfileParser)(nil)

// ProfileParser is a mock implementation of facdir.ProfileParser.
type ProfileParser struct {
	ParseProfileFn func(html string, profileURL string) (*facdir.Profile, error)
}

func (p *ProfileParser) ParseProfile(html string, profileURL string) (*facdir.Profile, error) {
	return p.ParseProfileFn(html, profileURL)
}
