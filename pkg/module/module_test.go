package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/JaimeStill/mail-designer/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func body(t *testing.T, h http.Handler, method, path string) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	data, _ := io.ReadAll(w.Result().Body)
	return w.Code, string(data)
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "api", "/api/v1"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, echoPath())
		})
	}
}

func TestModule_Serve_StripsPrefix(t *testing.T) {
	m := module.New("/api", echoPath())

	tests := []struct {
		path string
		want string
	}{
		{"/api", "/"},
		{"/api/sessions", "/sessions"},
		{"/api/sessions/123/html", "/sessions/123/html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, got := body(t, http.HandlerFunc(m.Serve), http.MethodGet, tt.path)
			if got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModule_MiddlewareOrder(t *testing.T) {
	var order []string

	m := module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	for _, name := range []string{"first", "second"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	body(t, m.Handler(), http.MethodGet, "/x")

	if want := []string{"first", "second", "handler"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestRouter(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("healthy"))
	})
	r.Mount(module.New("/api", echoPath()))
	r.Mount(module.New("/app", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("app"))
	})))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"native", "/healthz", http.StatusOK, "healthy"},
		{"module", "/api/sessions", http.StatusOK, "/sessions"},
		{"second module", "/app/sessions/1", http.StatusOK, "app"},
		{"trailing slash", "/api/sessions/", http.StatusOK, "/sessions"},
		{"module root with slash", "/api/", http.StatusOK, "/"},
		{"unmatched", "/unknown", http.StatusNotFound, ""},
		{"root", "/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, got := body(t, r, http.MethodGet, tt.path)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
		})
	}
}
