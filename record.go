package facdir

import (
	"context"
	"encoding/json"
	"time"
)

// NotListed is the sentinel substituted for research interests that a
// profile page does not provide.
const NotListed = "Not listed"

// Record represents one faculty member from the department directory.
//
// Title and Email are optional; an empty string means the source did not
// provide them.
type Record struct {
	Name        string `json:"name"`
	ProfileLink string `json:"profile_link"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	Research    string `json:"research"`
	Website     string `json:"website"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "faculty name required")
	}
	if r.ProfileLink == "" {
		return Errorf(EINVALID, "profile link required for %q", r.Name)
	}
	return nil
}

// ResearchOrDefault returns the research text, or NotListed when absent.
func (r *Record) ResearchOrDefault() string {
	if r.Research == "" {
		return NotListed
	}
	return r.Research
}

// WebsiteOrDefault returns the personal website, falling back to the
// profile link when no distinct site is known.
func (r *Record) WebsiteOrDefault() string {
	if r.Website == "" {
		return r.ProfileLink
	}
	return r.Website
}

// Apply merges profile fields into the record. A profile without a title
// keeps the title from the directory listing.
func (r *Record) Apply(p *Profile) {
	r.Research = p.Research
	r.Website = p.Website
	if p.Title != "" {
		r.Title = p.Title
	}
}

// UnmarshalJSON accepts both profile_link and profileLink keys, and null
// for optional fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name           *string `json:"name"`
		ProfileLink    *string `json:"profile_link"`
		ProfileLinkAlt *string `json:"profileLink"`
		Title          *string `json:"title"`
		Email          *string `json:"email"`
		Research       *string `json:"research"`
		Website        *string `json:"website"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{
		Name:        deref(raw.Name),
		ProfileLink: deref(raw.ProfileLink),
		Title:       deref(raw.Title),
		Email:       deref(raw.Email),
		Research:    deref(raw.Research),
		Website:     deref(raw.Website),
	}
	if r.ProfileLink == "" {
		r.ProfileLink = deref(raw.ProfileLinkAlt)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Profile holds the extended fields found on an individual profile page.
type Profile struct {
	Research string
	Website  string
	Title    string // empty when the page has no titles block
}

// RecordStore persists a complete record set.
// Each Save replaces the previous snapshot entirely.
type RecordStore interface {
	// Save writes all records, replacing any existing snapshot.
	// Returns EINVALID without writing if any record fails validation.
	Save(ctx context.Context, records []*Record) error

	// Load reads the full record set in stored order.
	// Returns ENOTFOUND if no snapshot exists.
	Load(ctx context.Context) ([]*Record, error)
}

// StoreInfo describes a persisted snapshot.
type StoreInfo struct {
	Path     string
	Size     int64
	Checksum string
	ModTime  time.Time
}
