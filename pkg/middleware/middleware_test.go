package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/JaimeStill/mail-designer/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSystem_Apply_Order(t *testing.T) {
	var order []string
	mw := middleware.New()

	for _, name := range []string{"first", "second"} {
		mw.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if want := []string{"first", "second", "handler"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions?x=1", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}

	out := buf.String()
	for _, want := range []string{"request", "POST", "/api/sessions?x=1", "status=418", "duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestCORS(t *testing.T) {
	enabled := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}

	tests := []struct {
		name       string
		cfg        *middleware.CORSConfig
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"disabled", &middleware.CORSConfig{Origins: enabled.Origins}, http.MethodGet, "http://localhost:3000", "", http.StatusOK},
		{"no origins", &middleware.CORSConfig{Enabled: true}, http.MethodGet, "http://localhost:3000", "", http.StatusOK},
		{"allowed", enabled, http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusOK},
		{"disallowed", enabled, http.MethodGet, "http://evil.example", "", http.StatusOK},
		{"preflight", enabled, http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(okHandler()).ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantOrigin != "" {
				if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
					t.Errorf("Access-Control-Allow-Methods = %q", got)
				}
				if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
					t.Errorf("Access-Control-Allow-Credentials = %q", got)
				}
				if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
					t.Errorf("Access-Control-Max-Age = %q", got)
				}
			}
		})
	}
}

func TestCORSConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &middleware.CORSConfig{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if len(cfg.AllowedMethods) != 5 {
			t.Errorf("AllowedMethods = %v", cfg.AllowedMethods)
		}
		if cfg.MaxAge != 3600 {
			t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_CORS_ENABLED", "true")
		t.Setenv("TEST_CORS_ORIGINS", "http://a.example, http://b.example")
		t.Setenv("TEST_CORS_MAX_AGE", "7200")

		cfg := &middleware.CORSConfig{}
		env := &middleware.CORSEnv{
			Enabled: "TEST_CORS_ENABLED",
			Origins: "TEST_CORS_ORIGINS",
			MaxAge:  "TEST_CORS_MAX_AGE",
		}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if !cfg.Enabled {
			t.Error("Enabled should be true from env")
		}
		if want := []string{"http://a.example", "http://b.example"}; !slices.Equal(cfg.Origins, want) {
			t.Errorf("Origins = %v, want %v", cfg.Origins, want)
		}
		if cfg.MaxAge != 7200 {
			t.Errorf("MaxAge = %d, want 7200", cfg.MaxAge)
		}
	})
}
