package app_test

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/internal/sessions"
	"github.com/JaimeStill/mail-designer/pkg/module"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
	"github.com/JaimeStill/mail-designer/pkg/storage"
	"github.com/JaimeStill/mail-designer/web/app"
)

func setup(t *testing.T) (http.Handler, sessions.System) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &sessions.Config{}
	require.NoError(t, cfg.Finalize(nil))

	storeCfg := &storage.Config{BasePath: t.TempDir()}
	require.NoError(t, storeCfg.Finalize(nil))
	store, err := storage.New(storeCfg, logger)
	require.NoError(t, err)

	exportCfg := &export.Config{}
	require.NoError(t, exportCfg.Finalize(nil))

	pages := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	sys := sessions.New(cfg, export.New(exportCfg, store, logger), logger, pages)

	m, err := app.NewModule("/app", sys, logger, pages)
	require.NoError(t, err)

	router := module.NewRouter()
	router.Mount(m)
	return router, sys
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestHome_ListsSessions(t *testing.T) {
	h, sys := setup(t)

	v, err := sys.Create(context.Background(), sessions.CreateCommand{Name: "Autumn sale"})
	require.NoError(t, err)

	rec := get(h, "/app")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Autumn sale")
	assert.Contains(t, rec.Body.String(), "/app/sessions/"+v.ID.String())
}

func TestSession_Preview(t *testing.T) {
	h, sys := setup(t)
	ctx := context.Background()

	v, err := sys.Create(ctx, sessions.CreateCommand{Name: "Launch"})
	require.NoError(t, err)

	rec := get(h, "/app/sessions/"+v.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Launch · Mail Designer</title>")
	assert.Contains(t, body, "3 blocks")
	assert.Contains(t, body, `srcdoc="`)
	assert.NotContains(t, body, `<div class="container">`, "email markup must stay escaped inside the page")

	canonical, err := sys.Render(ctx, v.ID)
	require.NoError(t, err)
	assert.Contains(t, html.UnescapeString(body), canonical)

	code, err := sys.CodeView(ctx, v.ID)
	require.NoError(t, err)
	assert.Contains(t, html.UnescapeString(body), strings.Split(code, "\n")[1])
}

func TestSession_NotFound(t *testing.T) {
	h, _ := setup(t)

	for _, path := range []string{
		"/app/sessions/" + uuid.NewString(),
		"/app/sessions/not-a-uuid",
		"/app/unknown",
	} {
		rec := get(h, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Not Found", path)
	}
}
