// Package render turns a document into canonical email HTML and derives the
// other views of that HTML: the code view, the plain-text alternative, and
// the minified form.
package render

import (
	"html"
	"strings"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
)

// DefaultFallbackURL is the link target for buttons whose url is empty or
// the "#" placeholder.
const DefaultFallbackURL = "https://example.com"

const preamble = `<!DOCTYPE html>` +
	`<html lang="en">` +
	`<head>` +
	`<meta charset="UTF-8">` +
	`<meta name="viewport" content="width=device-width, initial-scale=1.0">` +
	`<title>Email Template</title>` +
	`<style>` +
	`body{margin:0;padding:0;background-color:#f3f4f6;font-family:Arial,Helvetica,sans-serif;}` +
	`.container{max-width:600px;margin:0 auto;background-color:#ffffff;}` +
	`.button-link{text-decoration:none;}` +
	`.block{padding:12px 24px;}` +
	`</style>` +
	`</head>` +
	`<body>` +
	`<div class="container">`

const closing = `</div></body></html>`

// Serializer produces canonical HTML. The zero value escapes content and
// uses DefaultFallbackURL.
type Serializer struct {
	Policy      ContentPolicy
	FallbackURL string
}

// SerializeDocument serializes the document's current blocks.
func (s Serializer) SerializeDocument(d *document.Document) string {
	return s.Serialize(d.Blocks())
}

// Serialize renders blocks, in order, into a self-contained HTML document.
// The output depends only on its input.
func (s Serializer) Serialize(bs []blocks.Block) string {
	var buf strings.Builder
	buf.WriteString(preamble)

	n := len(bs)
	for i, b := range bs {
		buf.WriteString(`<div class="block"`)
		var spacing string
		if i == 0 {
			spacing += "padding-top:24px;"
		}
		if i == n-1 {
			spacing += "padding-bottom:24px;"
		}
		if spacing != "" {
			buf.WriteString(` style="`)
			buf.WriteString(spacing)
			buf.WriteString(`"`)
		}
		buf.WriteString(">")
		s.writeBlock(&buf, b)
		buf.WriteString("</div>")
	}

	buf.WriteString(closing)
	return buf.String()
}

func (s Serializer) writeBlock(buf *strings.Builder, b blocks.Block) {
	style := b.Style.String()

	switch p := b.Payload.(type) {
	case blocks.Heading:
		buf.WriteString("<h1")
		writeStyle(buf, style)
		buf.WriteString(">")
		buf.WriteString(s.content(p.Content))
		buf.WriteString("</h1>")
	case blocks.Text:
		buf.WriteString("<p")
		writeStyle(buf, style)
		buf.WriteString(">")
		buf.WriteString(s.content(p.Content))
		buf.WriteString("</p>")
	case blocks.Button:
		buf.WriteString(`<a href="`)
		buf.WriteString(html.EscapeString(s.target(p.URL)))
		buf.WriteString(`" class="button-link"`)
		writeStyle(buf, style)
		buf.WriteString(">")
		buf.WriteString(s.content(p.Content))
		buf.WriteString("</a>")
	case blocks.Image:
		align := b.Style.TextAlign
		if align == "" {
			align = "center"
		}
		buf.WriteString(`<div style="text-align:`)
		buf.WriteString(html.EscapeString(align))
		buf.WriteString(`;"><img src="`)
		buf.WriteString(html.EscapeString(p.URL))
		buf.WriteString(`" alt=""`)
		writeStyle(buf, style)
		buf.WriteString("></div>")
	case blocks.Divider:
		buf.WriteString("<hr")
		writeStyle(buf, style)
		buf.WriteString(">")
	}
}

func (s Serializer) target(url string) string {
	if url != "" && url != "#" {
		return url
	}
	if s.FallbackURL != "" {
		return s.FallbackURL
	}
	return DefaultFallbackURL
}

func (s Serializer) content(text string) string {
	return s.Policy.Apply(text)
}

func writeStyle(buf *strings.Builder, style string) {
	if style == "" {
		return
	}
	buf.WriteString(` style="`)
	buf.WriteString(html.EscapeString(style))
	buf.WriteString(`"`)
}
