package facdir

import "strings"

// SearchState classifies the outcome of a name search.
type SearchState int

const (
	// SearchEmpty means the query was blank.
	SearchEmpty SearchState = iota
	// SearchNoMatch means no name contained the query.
	SearchNoMatch
	// SearchSingleMatch means exactly one record matched.
	SearchSingleMatch
	// SearchMultiMatch means two or more records matched.
	SearchMultiMatch
)

// String returns a lowercase name for the state.
func (s SearchState) String() string {
	switch s {
	case SearchEmpty:
		return "empty"
	case SearchNoMatch:
		return "no_match"
	case SearchSingleMatch:
		return "single_match"
	case SearchMultiMatch:
		return "multi_match"
	default:
		return "unknown"
	}
}

// SearchResult is the view model produced by a search.
type SearchResult struct {
	State SearchState

	// Query is the trimmed query text.
	Query string

	// Record is set only for SearchSingleMatch.
	Record *Record

	// Matches lists matching names in store order. Set only for SearchMultiMatch.
	Matches []string
}

// IsEmpty reports whether the query was blank.
func (r *SearchResult) IsEmpty() bool { return r.State == SearchEmpty }

// IsNoMatch reports whether no record matched.
func (r *SearchResult) IsNoMatch() bool { return r.State == SearchNoMatch }

// IsSingleMatch reports whether exactly one record matched.
func (r *SearchResult) IsSingleMatch() bool { return r.State == SearchSingleMatch }

// IsMultiMatch reports whether more than one record matched.
func (r *SearchResult) IsMultiMatch() bool { return r.State == SearchMultiMatch }

// Directory is an immutable, in-memory index of faculty records.
// It is safe for concurrent use because nothing mutates it after construction.
type Directory struct {
	records []*Record
}

// NewDirectory returns a Directory over a copy of records.
func NewDirectory(records []*Record) *Directory {
	rs := make([]*Record, 0, len(records))
	for _, r := range records {
		cp := *r
		rs = append(rs, &cp)
	}
	return &Directory{records: rs}
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// Search finds records whose name contains query, ignoring case.
// Matches keep the directory's original order.
func (d *Directory) Search(query string) *SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResult{State: SearchEmpty}
	}

	q := strings.ToLower(query)
	var matches []*Record
	for _, r := range d.records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return &SearchResult{State: SearchNoMatch, Query: query}
	case 1:
		return &SearchResult{State: SearchSingleMatch, Query: query, Record: matches[0]}
	}

	names := make([]string, len(matches))
	for i, r := range matches {
		names[i] = r.Name
	}
	return &SearchResult{State: SearchMultiMatch, Query: query, Matches: names}
}

// Select returns the record whose name equals name, ignoring case and
// surrounding whitespace. The first record wins when names repeat.
//
// Returns EINVALID for a blank name and ENOTFOUND when no record matches.
func (d *Directory) Select(name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Errorf(EINVALID, "faculty name required")
	}
	for _, r := range d.records {
		if strings.EqualFold(strings.TrimSpace(r.Name), name) {
			return r, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "Could not find data for %s.", name)
}

// Stats summarizes a directory's coverage.
type Stats struct {
	Records      int
	WithResearch int
	WithWebsite  int
	WithEmail    int
}

// Stats counts records with research listed, with a personal website
// distinct from the profile page, and with an email address.
func (d *Directory) Stats() Stats {
	s := Stats{Records: len(d.records)}
	for _, r := range d.records {
		if r.Research != "" && r.Research != NotListed {
			s.WithResearch++
		}
		if r.Website != "" && r.Website != r.ProfileLink {
			s.WithWebsite++
		}
		if r.Email != "" {
			s.WithEmail++
		}
	}
	return s
}
