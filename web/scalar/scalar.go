// Package scalar serves the interactive API reference using the Scalar UI,
// pointed at the API module's generated OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/mail-designer/pkg/handlers"
	"github.com/JaimeStill/mail-designer/pkg/module"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// NewModule creates the reference module mounted at basePath, loading the
// document from specURL.
func NewModule(basePath, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct{ SpecURL string }{specURL}); err != nil {
		return nil, err
	}
	page := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondContent(w, http.StatusOK, "text/html; charset=utf-8", page)
	})

	return module.New(basePath, mux), nil
}
