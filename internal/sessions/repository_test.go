package sessions_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
	"github.com/JaimeStill/mail-designer/internal/export"
	"github.com/JaimeStill/mail-designer/internal/sessions"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
	"github.com/JaimeStill/mail-designer/pkg/storage"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pageConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func newSystem(t *testing.T, cfg *sessions.Config) sessions.System {
	t.Helper()

	if cfg == nil {
		cfg = &sessions.Config{}
	}
	require.NoError(t, cfg.Finalize(nil))

	storeCfg := &storage.Config{BasePath: t.TempDir()}
	require.NoError(t, storeCfg.Finalize(nil))
	store, err := storage.New(storeCfg, discard())
	require.NoError(t, err)

	exportCfg := &export.Config{}
	require.NoError(t, exportCfg.Finalize(nil))

	return sessions.New(cfg, export.New(exportCfg, store, discard()), discard(), pageConfig())
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, nil)

	t.Run("seeded", func(t *testing.T) {
		v, err := sys.Create(ctx, sessions.CreateCommand{Name: "  Spring  "})
		require.NoError(t, err)
		assert.Equal(t, "Spring", v.Name)
		require.Len(t, v.Blocks, 3)
		assert.Equal(t, blocks.VariantHeading, v.Blocks[0].Variant())
		assert.Equal(t, blocks.VariantText, v.Blocks[1].Variant())
		assert.Equal(t, blocks.VariantButton, v.Blocks[2].Variant())
		assert.Nil(t, v.Selected)
	})

	t.Run("empty", func(t *testing.T) {
		v, err := sys.Create(ctx, sessions.CreateCommand{Empty: true})
		require.NoError(t, err)
		assert.Equal(t, "Untitled template", v.Name)
		assert.Empty(t, v.Blocks)
		assert.NotNil(t, v.Blocks)
	})
}

func TestCreate_LimitReached(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, &sessions.Config{MaxSessions: 2})

	for range 2 {
		_, err := sys.Create(ctx, sessions.CreateCommand{})
		require.NoError(t, err)
	}

	_, err := sys.Create(ctx, sessions.CreateCommand{})
	assert.ErrorIs(t, err, sessions.ErrLimitReached)
}

func TestFind_NotFound(t *testing.T) {
	_, err := newSystem(t, nil).Find(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, nil)

	for _, name := range []string{"Weekly digest", "Product launch", "Weekly recap"} {
		_, err := sys.Create(ctx, sessions.CreateCommand{Name: name})
		require.NoError(t, err)
	}

	all, err := sys.List(ctx, pagination.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 3, all.Data[0].BlockCount)

	weekly, err := sys.List(ctx, pagination.PageRequest{Search: strPtr("weekly")})
	require.NoError(t, err)
	assert.Equal(t, 2, weekly.Total)

	paged, err := sys.List(ctx, pagination.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Data, 1)
	assert.Equal(t, 2, paged.TotalPages)
}

func TestAddBlock(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, &sessions.Config{MaxBlocks: 4})

	v, err := sys.Create(ctx, sessions.CreateCommand{})
	require.NoError(t, err)

	b, err := sys.AddBlock(ctx, v.ID, blocks.VariantImage)
	require.NoError(t, err)
	url, ok := b.URL()
	assert.True(t, ok)
	assert.Equal(t, blocks.DefaultPlaceholderImage, url)

	found, err := sys.Find(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, found.Blocks, 4)
	assert.Equal(t, b.ID, found.Blocks[3].ID)

	_, err = sys.AddBlock(ctx, v.ID, blocks.VariantDivider)
	assert.ErrorIs(t, err, sessions.ErrTooManyBlocks)

	_, err = sys.AddBlock(ctx, v.ID, blocks.Variant("video"))
	assert.ErrorIs(t, err, blocks.ErrUnknownVariant)

	_, err = sys.AddBlock(ctx, uuid.New(), blocks.VariantText)
	assert.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestEditing(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, nil)

	v, err := sys.Create(ctx, sessions.CreateCommand{})
	require.NoError(t, err)
	heading, text, button := v.Blocks[0].ID, v.Blocks[1].ID, v.Blocks[2].ID

	t.Run("remove absent is a no-op", func(t *testing.T) {
		got, err := sys.RemoveBlock(ctx, v.ID, uuid.New())
		require.NoError(t, err)
		assert.Len(t, got.Blocks, 3)
	})

	t.Run("update content", func(t *testing.T) {
		got, err := sys.UpdateContent(ctx, v.ID, button, blocks.ContentPatch{URL: strPtr("https://shop.example.com")})
		require.NoError(t, err)
		content, _ := got.Blocks[2].Content()
		url, _ := got.Blocks[2].URL()
		assert.Equal(t, "Get Started", content)
		assert.Equal(t, "https://shop.example.com", url)
	})

	t.Run("update content inapplicable", func(t *testing.T) {
		_, err := sys.UpdateContent(ctx, v.ID, text, blocks.ContentPatch{URL: strPtr("https://example.com")})
		assert.ErrorIs(t, err, blocks.ErrInapplicableField)
		assert.Equal(t, http.StatusBadRequest, sessions.MapHTTPStatus(err))
	})

	t.Run("update style", func(t *testing.T) {
		got, err := sys.UpdateStyle(ctx, v.ID, heading, blocks.StylePatch{blocks.PropColor: "#ff0000"})
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", got.Blocks[0].Style.Get(blocks.PropColor))
		assert.Equal(t, "24px", got.Blocks[0].Style.Get(blocks.PropFontSize))
	})

	t.Run("reorder", func(t *testing.T) {
		got, err := sys.Reorder(ctx, v.ID, []uuid.UUID{button, heading, text})
		require.NoError(t, err)
		assert.Equal(t, button, got.Blocks[0].ID)

		_, err = sys.Reorder(ctx, v.ID, []uuid.UUID{button, heading})
		assert.ErrorIs(t, err, document.ErrInvalidReorder)
		assert.Equal(t, http.StatusConflict, sessions.MapHTTPStatus(err))
	})

	t.Run("move", func(t *testing.T) {
		got, err := sys.Move(ctx, v.ID, button, 2)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{heading, text, button}, []uuid.UUID{got.Blocks[0].ID, got.Blocks[1].ID, got.Blocks[2].ID})
	})

	t.Run("select", func(t *testing.T) {
		got, err := sys.Select(ctx, v.ID, &text)
		require.NoError(t, err)
		require.NotNil(t, got.Selected)
		assert.Equal(t, text, *got.Selected)

		missing := uuid.New()
		_, err = sys.Select(ctx, v.ID, &missing)
		assert.ErrorIs(t, err, sessions.ErrBlockNotFound)

		got, err = sys.Select(ctx, v.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, got.Selected)
	})

	t.Run("removing the selected block clears the selection", func(t *testing.T) {
		_, err := sys.Select(ctx, v.ID, &text)
		require.NoError(t, err)

		got, err := sys.RemoveBlock(ctx, v.ID, text)
		require.NoError(t, err)
		assert.Len(t, got.Blocks, 2)
		assert.Nil(t, got.Selected)
	})

	t.Run("clear", func(t *testing.T) {
		got, err := sys.Clear(ctx, v.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Blocks)
	})
}

func TestRenderAndCodeView(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, nil)

	v, err := sys.Create(ctx, sessions.CreateCommand{})
	require.NoError(t, err)

	html, err := sys.Render(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Welcome to Our Newsletter")
	assert.Contains(t, html, `href="https://example.com"`)
	assert.NotContains(t, html, "\n")

	code, err := sys.CodeView(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, html, strings.ReplaceAll(code, "\n", ""))
}

func TestRender_ConfiguredFallbackAndPolicy(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, &sessions.Config{FallbackURL: "https://shop.example.org", ContentPolicy: "sanitize"})

	v, err := sys.Create(ctx, sessions.CreateCommand{})
	require.NoError(t, err)

	_, err = sys.UpdateContent(ctx, v.ID, v.Blocks[1].ID, blocks.ContentPatch{Content: strPtr(`<b>bold</b><script>alert(1)</script>`)})
	require.NoError(t, err)

	html, err := sys.Render(ctx, v.ID)
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://shop.example.org"`)
	assert.Contains(t, html, "<b>bold</b>")
	assert.NotContains(t, html, "<script>")
}

func TestExportDownloadDelete(t *testing.T) {
	ctx := context.Background()
	sys := newSystem(t, nil)

	v, err := sys.Create(ctx, sessions.CreateCommand{})
	require.NoError(t, err)

	a, err := sys.Export(ctx, v.ID, export.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "email-template.html", a.Filename)

	html, err := sys.Render(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, html, string(a.Body))

	_, err = sys.Export(ctx, v.ID, export.FormatEML)
	require.NoError(t, err)

	names, err := sys.Exports(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"email-template.eml", "email-template.html"}, names)

	got, err := sys.Download(ctx, v.ID, "email-template.html")
	require.NoError(t, err)
	assert.Equal(t, a.Body, got.Body)

	_, err = sys.Download(ctx, v.ID, "email-template.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, sessions.MapHTTPStatus(err))

	require.NoError(t, sys.Delete(ctx, v.ID))
	_, err = sys.Download(ctx, v.ID, "email-template.html")
	assert.ErrorIs(t, err, sessions.ErrNotFound)

	assert.ErrorIs(t, sys.Delete(ctx, v.ID), sessions.ErrNotFound)
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{sessions.ErrNotFound, http.StatusNotFound},
		{sessions.ErrBlockNotFound, http.StatusNotFound},
		{sessions.ErrLimitReached, http.StatusTooManyRequests},
		{sessions.ErrTooManyBlocks, http.StatusUnprocessableEntity},
		{document.ErrInvalidReorder, http.StatusConflict},
		{blocks.ErrUnknownVariant, http.StatusBadRequest},
		{blocks.ErrUnknownProperty, http.StatusBadRequest},
		{export.ErrUnknownFormat, http.StatusBadRequest},
		{export.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{storage.ErrNotFound, http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, sessions.MapHTTPStatus(tt.err))
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_DESIGNER_MAX_BLOCKS", "12")

	cfg := &sessions.Config{}
	require.NoError(t, cfg.Finalize(&sessions.Env{MaxBlocks: "TEST_DESIGNER_MAX_BLOCKS"}))
	assert.Equal(t, 12, cfg.MaxBlocks)
	assert.Equal(t, "escape", cfg.ContentPolicy)
	assert.Equal(t, "https://example.com", cfg.FallbackURL)

	assert.Error(t, (&sessions.Config{ContentPolicy: "trust-me"}).Finalize(nil))
	assert.Error(t, (&sessions.Config{SessionTTL: "forever"}).Finalize(nil))

	t.Setenv("TEST_DESIGNER_MAX_SESSIONS", "many")
	assert.Error(t, (&sessions.Config{}).Finalize(&sessions.Env{MaxSessions: "TEST_DESIGNER_MAX_SESSIONS"}))
}
