// Package slog provides log/slog decorators for facdir services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/facdir"
)

// Ensure LoggingFetcher implements facdir.Fetcher.
var _ facdir.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with page logging. Successful fetches are
// logged at debug level, failures at warn. When the context names a faculty
// member (facdir.WithFacultyName) the entry carries a faculty attribute.
type LoggingFetcher struct {
	next   facdir.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next facdir.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []slog.Attr{
			slog.String("url", url),
			slog.Duration("duration", time.Since(begin)),
		}
		if name := facdir.FacultyName(ctx); name != "" {
			attrs = append(attrs, slog.String("faculty", name))
		}

		if err != nil {
			attrs = append(attrs, slog.Any("err", err))
			f.logger.LogAttrs(ctx, slog.LevelWarn, "fetch page failed", attrs...)
			return
		}
		attrs = append(attrs, slog.Int("bytes", len(html)))
		f.logger.LogAttrs(ctx, slog.LevelDebug, "fetch page", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
