// Package module mounts self-contained HTTP handlers under single-segment
// URL prefixes. Each module owns its middleware chain and sees request paths
// with its prefix removed.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/mail-designer/pkg/middleware"
)

// Module is an http.Handler mounted at a prefix.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module. The prefix must be a single path segment with a
// leading slash, such as "/api"; anything else panics.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware runs in registration order.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the module prefix from the request path and dispatches to
// the wrapped handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single segment: %q", prefix)
	}
	return nil
}
