package main

import (
	"fmt"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/scrape"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.DryRun {
		records, err := deps.Scraper.FetchDirectory(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return reported(err)
		}
		writeListing(deps, records)
		return nil
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressListed:
			fmt.Fprintf(deps.Stdout, "Found %d faculty entries.\n", event.Total)
		case scrape.ProgressFetching:
			fmt.Fprintf(deps.Stdout, "[%d/%d] Fetching %s ...\n", event.Completed, event.Total, event.Name)
		case scrape.ProgressDegraded:
			fmt.Fprintf(deps.Stderr, "  Error fetching %s: %v\n", event.URL, event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Done! Saved %d records to %s", result.Records, deps.DataPath)
	if result.Degraded > 0 {
		fmt.Fprintf(deps.Stdout, " (%d profiles not fetched)", result.Degraded)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

func writeListing(deps *Dependencies, records []*facdir.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Title", "Email", "Profile"})

	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.Name, r.Title, r.Email, r.ProfileLink})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
