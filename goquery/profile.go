package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/facdir"
)

// ProfileSelectors locates the fields of an individual profile page.
type ProfileSelectors struct {
	// Research is tried first for research interests.
	Research string

	// ResearchHeading elements whose text contains "research" introduce a
	// section; the next p element after one is used as a fallback.
	ResearchHeading string

	// Contact contains label/link pairs. A label whose text contains
	// WebsiteLabel is followed by the personal website link.
	Contact      string
	WebsiteLabel string

	// Titles holds the person's full title.
	Titles string
}

// DefaultProfileSelectors matches the profile page markup the scraper was
// built against.
var DefaultProfileSelectors = ProfileSelectors{
	Research:        "p.profile-research",
	ResearchHeading: "h2",
	Contact:         "div.profile-contact-info",
	WebsiteLabel:    "webpage",
	Titles:          "div.profile-titles",
}

// Ensure ProfileParser implements facdir.ProfileParser at compile time.
var _ facdir.ProfileParser = (*ProfileParser)(nil)

// ProfileParser extracts research, website and title from a profile page.
type ProfileParser struct {
	selectors ProfileSelectors
}

// ProfileOption configures a ProfileParser.
type ProfileOption func(*ProfileParser)

// WithProfileSelectors overrides DefaultProfileSelectors.
func WithProfileSelectors(s ProfileSelectors) ProfileOption {
	return func(p *ProfileParser) {
		p.selectors = s
	}
}

// NewProfileParser creates a new ProfileParser.
func NewProfileParser(opts ...ProfileOption) *ProfileParser {
	p := &ProfileParser{selectors: DefaultProfileSelectors}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseProfile extracts extended fields. Research defaults to
// facdir.NotListed and Website defaults to profileURL.
func (p *ProfileParser) ParseProfile(html string, profileURL string) (*facdir.Profile, error) {
	base, err := url.Parse(profileURL)
	if err != nil {
		return nil, facdir.Errorf(facdir.EINVALID, "invalid profile URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, facdir.Errorf(facdir.EINVALID, "failed to parse HTML: %v", err)
	}

	profile := &facdir.Profile{
		Research: p.research(doc),
		Website:  p.website(doc, base),
		Title:    strippedText(doc.Find(p.selectors.Titles).First(), " "),
	}
	if profile.Research == "" {
		profile.Research = facdir.NotListed
	}
	if profile.Website == "" {
		profile.Website = profileURL
	}
	return profile, nil
}

func (p *ProfileParser) research(doc *goquery.Document) string {
	if text := strippedText(doc.Find(p.selectors.Research).First(), " "); text != "" {
		return text
	}

	// Fallback: first paragraph after a "Research" heading, in document order.
	var text string
	inSection := false
	doc.Find(p.selectors.ResearchHeading + ", p").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.Is(p.selectors.ResearchHeading) {
			if !inSection && strings.Contains(strings.ToLower(el.Text()), "research") {
				inSection = true
			}
			return true
		}
		if inSection {
			text = strippedText(el, " ")
			return false
		}
		return true
	})
	return text
}

func (p *ProfileParser) website(doc *goquery.Document, base *url.URL) string {
	contact := doc.Find(p.selectors.Contact).First()
	if contact.Length() == 0 {
		return ""
	}

	label := strings.ToLower(p.selectors.WebsiteLabel)
	var website string
	labelSeen := false
	doc.Find("strong, a[href]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if goquery.NodeName(el) == "strong" {
			if contact.Contains(el.Get(0)) && strings.Contains(strings.ToLower(strippedText(el, "")), label) {
				labelSeen = true
			}
			return true
		}
		if !labelSeen {
			return true
		}
		href, _ := el.Attr("href")
		if strings.TrimSpace(href) == "" {
			return true
		}
		website = resolveURL(base, href)
		return website == ""
	})
	return website
}
