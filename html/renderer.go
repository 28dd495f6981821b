// Package html renders faculty search results as HTML using html/template,
// which escapes all record text for its context.
package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/fwojciec/facdir"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTitle is the page heading used when none is configured.
const DefaultTitle = "Faculty Finder"

// Page is the view model for a full search page.
type Page struct {
	Title string
	Query string

	// Result is the outcome of a search, if one was made.
	Result *facdir.SearchResult

	// Selected is a record picked from a multi-match list.
	// It takes precedence over Result.
	Selected *facdir.Record

	// Error is shown instead of any result.
	Error string
}

// Renderer renders faculty views.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Renderer{tmpl: tmpl}
}

// Detail writes the detail view for a single record.
func (r *Renderer) Detail(w io.Writer, rec *facdir.Record) error {
	return r.tmpl.ExecuteTemplate(w, "detail", rec)
}

// Fragment writes only the output section of a page.
func (r *Renderer) Fragment(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, "result", p)
}

// Page writes a complete HTML document with the search form.
func (r *Renderer) Page(w io.Writer, p *Page) error {
	if p.Title == "" {
		cp := *p
		cp.Title = DefaultTitle
		p = &cp
	}
	return r.tmpl.ExecuteTemplate(w, "page", p)
}
