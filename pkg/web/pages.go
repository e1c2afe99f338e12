// Package web provides infrastructure for serving web pages with Go templates.
// Templates are parsed once at startup so rendering a page never reparses.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// PageDef defines a page with its route, template file, and title.
type PageDef struct {
	Route    string
	Template string
	Title    string
}

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates matching layoutGlob in layoutFS
// and clones them once per page, adding the page template found under
// pageSubdir in pageFS. Any parse failure is returned immediately.
func NewTemplateSet(layoutFS, pageFS fs.FS, layoutGlob, pageSubdir, basePath string, pages []PageDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	pageSub, err := fs.Sub(pageFS, pageSubdir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		_, err = t.ParseFS(pageSub, p.Template)
		if err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p.Template, err)
		}
		pageTemplates[p.Template] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path passed to every page.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler returns an HTTP handler that renders an error page with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout string, page PageDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts.RenderStatus(w, status, layout, page, nil)
	}
}

// RenderStatus renders page with data into a buffer and writes it with
// status. A render failure yields a 500 with no partial page.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, status int, layout string, page PageDef, data any) {
	var buf bytes.Buffer
	err := ts.Render(&buf, layout, page.Template, PageData{
		Title:    page.Title,
		BasePath: ts.basePath,
		Data:     data,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Render executes the named layout template for pagePath with data.
func (ts *TemplateSet) Render(w io.Writer, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}
	return t.ExecuteTemplate(w, layoutName, data)
}
