package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/facdir"
)

// ListingSelectors locates the fields of a directory listing.
// Name, Title and Email are evaluated relative to each Row.
type ListingSelectors struct {
	Row   string
	Name  string
	Title string
	Email string
}

// DefaultListingSelectors matches the faculty directory markup the scraper
// was built against.
var DefaultListingSelectors = ListingSelectors{
	Row:   "div.people-list div.row",
	Name:  "div.list-name a",
	Title: "div.short-title",
	Email: "div.email a",
}

// Ensure ListingParser implements facdir.ListingParser at compile time.
var _ facdir.ListingParser = (*ListingParser)(nil)

// ListingParser extracts summary records from a directory listing page.
type ListingParser struct {
	selectors ListingSelectors
}

// ListingOption configures a ListingParser.
type ListingOption func(*ListingParser)

// WithListingSelectors overrides DefaultListingSelectors.
func WithListingSelectors(s ListingSelectors) ListingOption {
	return func(p *ListingParser) {
		p.selectors = s
	}
}

// NewListingParser creates a new ListingParser.
func NewListingParser(opts ...ListingOption) *ListingParser {
	p := &ListingParser{selectors: DefaultListingSelectors}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseListing returns one summary record per listing row, in page order.
// Rows without a usable name anchor are skipped.
func (p *ListingParser) ParseListing(html string, pageURL string) ([]*facdir.Record, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, facdir.Errorf(facdir.EINVALID, "invalid page URL: %v", err)
	}
	// Profile links are relative to the site root, not the listing page.
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, facdir.Errorf(facdir.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []*facdir.Record
	doc.Find(p.selectors.Row).Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find(p.selectors.Name).First()
		if anchor.Length() == 0 {
			return
		}

		name := facdir.NormalizeName(strippedText(anchor, ""))
		if name == "" {
			return
		}

		href, _ := anchor.Attr("href")
		link := ""
		if strings.TrimSpace(href) != "" {
			link = resolveURL(origin, href)
		}
		if link == "" {
			return
		}

		records = append(records, &facdir.Record{
			Name:        name,
			ProfileLink: link,
			Title:       strippedText(row.Find(p.selectors.Title).First(), " "),
			Email:       emailText(row.Find(p.selectors.Email).First()),
		})
	})

	return records, nil
}

// emailText prefers the anchor text and falls back to a mailto: target.
func emailText(sel *goquery.Selection) string {
	if text := strippedText(sel, ""); text != "" {
		return text
	}
	href, ok := sel.Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if len(href) > len("mailto:") && strings.EqualFold(href[:len("mailto:")], "mailto:") {
		addr := href[len("mailto:"):]
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		return addr
	}
	return ""
}
