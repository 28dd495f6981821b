// Package scrape provides faculty directory scraping orchestration.
// It coordinates the directory fetch, per-profile enrichment, and storage
// of the merged record set.
package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/facdir"
)

// Scraper fetches a directory listing, enriches every entry from its
// profile page, and saves the result. Profiles are fetched one at a time.
type Scraper struct {
	DirectoryFetcher facdir.Fetcher
	ProfileFetcher   facdir.Fetcher
	Listings         facdir.ListingParser
	Profiles         facdir.ProfileParser
	Store            facdir.RecordStore
	Logger           *slog.Logger
}

// Result holds the outcome of a scrape run.
type Result struct {
	Records  int
	Enriched int
	Degraded int
}

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressListed ProgressType = iota
	ProgressFetching
	ProgressDegraded
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// FetchDirectory downloads the listing page and returns its summary records.
// Any fetch or parse failure is returned; there is no partial result.
func (s *Scraper) FetchDirectory(ctx context.Context, directoryURL string) ([]*facdir.Record, error) {
	html, err := s.DirectoryFetcher.Fetch(ctx, directoryURL)
	if err != nil {
		return nil, fmt.Errorf("fetching directory %s: %w", directoryURL, err)
	}

	records, err := s.Listings.ParseListing(html, directoryURL)
	if err != nil {
		return nil, fmt.Errorf("parsing directory %s: %w", directoryURL, err)
	}

	return records, nil
}

// Enrich fetches and parses one profile page. It always returns a usable
// profile: on failure the profile carries facdir.NotListed research, the
// profile URL as website and no title, and the error describes why.
func (s *Scraper) Enrich(ctx context.Context, profileURL string) (*facdir.Profile, error) {
	html, err := s.ProfileFetcher.Fetch(ctx, profileURL)
	if err == nil {
		var profile *facdir.Profile
		if profile, err = s.Profiles.ParseProfile(html, profileURL); err == nil {
			return profile, nil
		}
	}

	s.logger().Warn("profile degraded", "url", profileURL, "err", err)
	return &facdir.Profile{
		Research: facdir.NotListed,
		Website:  profileURL,
	}, err
}

// Scrape fetches the directory and enriches each entry in listing order.
// A directory failure or context cancellation aborts the run; profile
// failures only degrade the affected record.
func (s *Scraper) Scrape(ctx context.Context, directoryURL string, progress ProgressFunc) ([]*facdir.Record, *Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	records, err := s.FetchDirectory(ctx, directoryURL)
	if err != nil {
		return nil, nil, err
	}

	total := len(records)
	progress(ProgressEvent{Type: ProgressListed, Total: total})
	s.logger().Info("directory listed", "url", directoryURL, "entries", total)

	result := &Result{Records: total}
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		progress(ProgressEvent{
			Type:      ProgressFetching,
			Completed: i + 1,
			Total:     total,
			Name:      r.Name,
			URL:       r.ProfileLink,
		})

		profile, err := s.Enrich(facdir.WithFacultyName(ctx, r.Name), r.ProfileLink)
		if err != nil {
			result.Degraded++
			progress(ProgressEvent{
				Type:      ProgressDegraded,
				Completed: i + 1,
				Total:     total,
				Name:      r.Name,
				URL:       r.ProfileLink,
				Error:     err,
			})
		} else {
			result.Enriched++
		}
		r.Apply(profile)
	}

	return records, result, nil
}

// Run scrapes the directory and saves the records, replacing the previous
// snapshot. Nothing is written when the scrape fails.
func (s *Scraper) Run(ctx context.Context, directoryURL string, progress ProgressFunc) (*Result, error) {
	records, result, err := s.Scrape(ctx, directoryURL, progress)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("saving records: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: result.Records, Total: result.Records})
	}

	return result, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
