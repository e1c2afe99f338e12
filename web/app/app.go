// Package app provides the server-rendered session browser: a session list
// and a preview page pairing the rendered email with its code view.
package app

import (
	"embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/mail-designer/internal/sessions"
	"github.com/JaimeStill/mail-designer/pkg/module"
	"github.com/JaimeStill/mail-designer/pkg/pagination"
	"github.com/JaimeStill/mail-designer/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var (
	homePage     = web.PageDef{Route: "/{$}", Template: "home.html", Title: "Sessions"}
	sessionPage  = web.PageDef{Route: "/sessions/{id}", Template: "session.html", Title: "Preview"}
	notFoundPage = web.PageDef{Template: "404.html", Title: "Not Found"}
)

type previewData struct {
	Session *sessions.View
	HTML    string
	Code    string
}

type handler struct {
	sys        sessions.System
	templates  *web.TemplateSet
	logger     *slog.Logger
	pagination pagination.Config
}

// NewModule creates the app module mounted at basePath.
func NewModule(basePath string, sys sessions.System, logger *slog.Logger, pages pagination.Config) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		[]web.PageDef{homePage, sessionPage, notFoundPage},
	)
	if err != nil {
		return nil, err
	}

	h := &handler{
		sys:        sys,
		templates:  ts,
		logger:     logger.With("module", "app"),
		pagination: pages,
	}
	return module.New(basePath, h.router()), nil
}

func (h *handler) router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+homePage.Route, h.home)
	mux.HandleFunc("GET "+sessionPage.Route, h.session)
	mux.HandleFunc("/", h.templates.ErrorHandler(layout, notFoundPage, http.StatusNotFound))
	return mux
}

func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		h.logger.Error("list sessions failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.templates.RenderStatus(w, http.StatusOK, layout, homePage, result)
}

func (h *handler) session(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.templates.RenderStatus(w, http.StatusNotFound, layout, notFoundPage, nil)
		return
	}

	data, err := h.preview(r, id)
	if errors.Is(err, sessions.ErrNotFound) {
		h.templates.RenderStatus(w, http.StatusNotFound, layout, notFoundPage, nil)
		return
	}
	if err != nil {
		h.logger.Error("render preview failed", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := sessionPage
	page.Title = data.Session.Name
	h.templates.RenderStatus(w, http.StatusOK, layout, page, data)
}

func (h *handler) preview(r *http.Request, id uuid.UUID) (*previewData, error) {
	view, err := h.sys.Find(r.Context(), id)
	if err != nil {
		return nil, err
	}
	html, err := h.sys.Render(r.Context(), id)
	if err != nil {
		return nil, err
	}
	code, err := h.sys.CodeView(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return &previewData{Session: view, HTML: html, Code: code}, nil
}
