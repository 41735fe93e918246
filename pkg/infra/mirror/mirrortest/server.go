// Package mirrortest provides an in-process fake of a dataset mirror for tests.
package mirrortest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// config holds the content served by the fake mirror
type config struct {
	manifest []byte
	files    map[string][]byte
	statuses map[string]int
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithManifest serves pairs as misc/filelist.json
func WithManifest(pairs [][]string) Option {
	return func(c *config) {
		raw, err := json.Marshal(pairs)
		if err != nil {
			panic(err)
		}
		c.manifest = raw
	}
}

// WithRawManifest serves body verbatim as misc/filelist.json
func WithRawManifest(body string) Option {
	return func(c *config) {
		c.manifest = []byte(body)
	}
}

// WithFile serves content at path, relative to the mirror root (e.g. "v3/misc/a.zip")
func WithFile(path string, content []byte) Option {
	return func(c *config) {
		c.files[strings.TrimPrefix(path, "/")] = content
	}
}

// WithStatus forces the response status of path
func WithStatus(path string, status int) Option {
	return func(c *config) {
		c.statuses[strings.TrimPrefix(path, "/")] = status
	}
}

// Server is a fake mirror backed by httptest
type Server struct {
	*httptest.Server

	cfg      *config
	mu       sync.Mutex
	requests []string
}

// NewServer starts a fake mirror. Unknown paths under v3/ get a small
// body derived from the path so that any planned file can be fetched.
func NewServer(opts ...Option) *Server {
	cfg := &config{
		files:    map[string][]byte{},
		statuses: map[string]int{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{cfg: cfg}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.recordRequest)
	router.Get("/v3/misc/filelist.json", s.handleManifest)
	router.Get("/*", s.handleFile)

	s.Server = httptest.NewServer(router)
	return s
}

// RootURL returns the mirror root with a trailing slash
func (s *Server) RootURL() string {
	return s.URL + "/"
}

// Requests returns the request paths received so far, in order
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	if status, ok := s.cfg.statuses["v3/misc/filelist.json"]; ok {
		w.WriteHeader(status)
		return
	}
	if s.cfg.manifest == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.cfg.manifest)
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if status, ok := s.cfg.statuses[path]; ok {
		w.WriteHeader(status)
		return
	}

	body, ok := s.cfg.files[path]
	if !ok {
		if !strings.HasPrefix(path, "v3/") {
			http.NotFound(w, r)
			return
		}
		body = []byte("content of " + path)
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(body)
}
