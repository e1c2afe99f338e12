// Package middleware provides composable HTTP middleware for request logging
// and CORS.
package middleware

import "net/http"

// System collects middleware and applies it to a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware system.
func New() System {
	return &system{}
}

func (s *system) Use(mw func(http.Handler) http.Handler) {
	s.stack = append(s.stack, mw)
}

// Apply wraps handler so the first registered middleware runs first.
func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
