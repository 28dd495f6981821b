package facdir

import "context"

// UserAgent identifies the scraper to the directory's web server.
const UserAgent = "facdir/1.0 (+faculty directory indexer)"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Non-success HTTP responses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

type facultyNameKey struct{}

// WithFacultyName returns a copy of ctx that names the faculty member whose
// page is being fetched.
func WithFacultyName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, facultyNameKey{}, name)
}

// FacultyName returns the name set by WithFacultyName, or "".
func FacultyName(ctx context.Context) string {
	name, _ := ctx.Value(facultyNameKey{}).(string)
	return name
}
