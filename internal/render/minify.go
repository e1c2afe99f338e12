package render

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return m
}

// Minify compacts canonical HTML for the minified export. Mail clients
// require the document tags, so they are kept.
func Minify(canonical string) (string, error) {
	out, err := minifier.String("text/html", canonical)
	if err != nil {
		return "", fmt.Errorf("minify html: %w", err)
	}
	return out, nil
}
