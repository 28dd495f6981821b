// Package chi serves the faculty search UI over HTTP using go-chi routing.
package chi

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/html"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const ShutdownTimeout = 5 * time.Second

// Server serves search and detail pages over a read-only Directory.
type Server struct {
	directory *facdir.Directory
	renderer  *html.Renderer
	logger    *slog.Logger
	router    chi.Router

	// Title is the page heading.
	Title string
}

// NewServer creates a Server with its routes attached.
func NewServer(directory *facdir.Directory, renderer *html.Renderer, logger *slog.Logger) *Server {
	s := &Server{
		directory: directory,
		renderer:  renderer,
		logger:    logger,
		Title:     html.DefaultTitle,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	s.Attach(r)
	s.router = r

	return s
}

// Attach registers the server's routes on r.
func (s *Server) Attach(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)
	r.Get("/faculty", s.handleFaculty)
	r.Get("/healthz", s.handleHealth)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, &html.Page{})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.writePage(w, http.StatusOK, &html.Page{
		Query:  q,
		Result: s.directory.Search(q),
	})
}

func (s *Server) handleFaculty(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	name := r.URL.Query().Get("name")

	rec, err := s.directory.Select(name)
	switch facdir.ErrorCode(err) {
	case "":
		s.writePage(w, http.StatusOK, &html.Page{Query: q, Selected: rec})
	case facdir.EINVALID:
		// Nothing selected: keep showing the search.
		s.writePage(w, http.StatusOK, &html.Page{Query: q, Result: s.directory.Search(q)})
	default:
		s.writePage(w, http.StatusNotFound, &html.Page{Query: q, Error: facdir.ErrorMessage(err)})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writePage(w http.ResponseWriter, code int, p *html.Page) {
	p.Title = s.Title

	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, p); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(begin),
		)
	})
}
