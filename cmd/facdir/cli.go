package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/html"
	"github.com/fwojciec/facdir/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DataPath  string
	Store     facdir.RecordStore
	StoreInfo func() (*facdir.StoreInfo, error)
	Scraper   *scrape.Scraper
	Renderer  *html.Renderer
	Converter facdir.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `short:"d" env:"FACDIR_DATA" default:"faculty.json" help:"Record store file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape the faculty directory into the record store"`
	Serve  ServeCmd  `cmd:"" help:"Serve the faculty search page"`
	Find   FindCmd   `cmd:"" help:"Search faculty by name"`
	Stats  StatsCmd  `cmd:"" help:"Show record store statistics"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL              string        `short:"u" env:"FACDIR_URL" default:"https://engineering.purdue.edu/ECE/People/Faculty" help:"Directory listing URL"`
	Browser          bool          `short:"b" help:"Fetch the directory with headless Chrome"`
	Timeout          time.Duration `default:"10s" help:"Timeout for each profile request"`
	DirectoryTimeout time.Duration `default:"30s" help:"Timeout for the directory request"`
	DryRun           bool          `short:"n" help:"List directory entries without fetching profiles or saving"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string `short:"a" env:"FACDIR_ADDR" default:":7860" help:"Listen address"`
	Title string `default:"Faculty Finder" help:"Page heading"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Query  string `arg:"" optional:"" help:"Partial or full faculty name"`
	Select string `short:"s" help:"Show the faculty member with this exact name"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// reportedError marks an error a command has already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}
