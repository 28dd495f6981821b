package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/fs"
	"github.com/fwojciec/facdir/goquery"
	"github.com/fwojciec/facdir/html"
	"github.com/fwojciec/facdir/htmltomarkdown"
	facdirhttp "github.com/fwojciec/facdir/http"
	"github.com/fwojciec/facdir/rod"
	"github.com/fwojciec/facdir/scrape"
	facslog "github.com/fwojciec/facdir/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetchers used by the scrape command. When nil, HTTP fetchers (or a
	// headless browser with --browser) are created from the flags.
	DirectoryFetcher facdir.Fetcher
	ProfileFetcher   facdir.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Errors a command has not
// already reported are written to stderr, so each failure is printed once.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	var re *reportedError
	if err != nil && !errors.As(err, &re) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("facdir"),
		kong.Description("Scrape a faculty directory and search it by name."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'facdir --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewRecordStore(cli.Data)
	deps.DataPath = store.Path()
	deps.Store = facslog.NewLoggingRecordStore(store, deps.Logger)
	deps.StoreInfo = store.Info
	deps.Renderer = html.NewRenderer()
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "scrape" {
		directoryFetcher, profileFetcher, err := m.fetchers(&cli.Scrape, stderr)
		if err != nil {
			return err
		}
		defer directoryFetcher.Close()
		defer profileFetcher.Close()

		deps.Scraper = &scrape.Scraper{
			DirectoryFetcher: facslog.NewLoggingFetcher(directoryFetcher, deps.Logger),
			ProfileFetcher:   facslog.NewLoggingFetcher(profileFetcher, deps.Logger),
			Listings:         goquery.NewListingParser(),
			Profiles:         goquery.NewProfileParser(),
			Store:            deps.Store,
			Logger:           deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) fetchers(c *ScrapeCmd, stderr io.Writer) (directory, profile facdir.Fetcher, err error) {
	directory, profile = m.DirectoryFetcher, m.ProfileFetcher

	if directory == nil {
		if c.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return nil, nil, fmt.Errorf("failed to start browser: %w", err)
			}
			directory = f
		} else {
			directory = facdirhttp.NewFetcher(facdirhttp.WithTimeout(
				positiveOr(c.DirectoryTimeout, facdirhttp.DefaultDirectoryTimeout)))
		}
	}

	if profile == nil {
		profile = facdirhttp.NewFetcher(facdirhttp.WithTimeout(
			positiveOr(c.Timeout, facdirhttp.DefaultFetchTimeout)))
	}

	return directory, profile, nil
}

// positiveOr returns d, or def when d is not positive. A zero timeout would
// leave the request unbounded.
func positiveOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
