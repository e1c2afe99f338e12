package export

import (
	"fmt"
	"slices"
)

// Format names an export packaging of the canonical HTML.
type Format string

const (
	FormatHTML Format = "html"
	FormatMin  Format = "min"
	FormatText Format = "txt"
	FormatEML  Format = "eml"
)

type formatInfo struct {
	filename    string
	contentType string
}

var formats = map[Format]formatInfo{
	FormatHTML: {"email-template.html", "text/html; charset=utf-8"},
	FormatMin:  {"email-template.min.html", "text/html; charset=utf-8"},
	FormatText: {"email-template.txt", "text/plain; charset=utf-8"},
	FormatEML:  {"email-template.eml", "message/rfc822"},
}

// Formats returns every export format in a stable order.
func Formats() []Format {
	return []Format{FormatHTML, FormatMin, FormatText, FormatEML}
}

// ParseFormat resolves a format name. The empty string selects FormatHTML.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatHTML, nil
	}
	f := Format(s)
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Filename returns the artifact filename for f.
func (f Format) Filename() string {
	return formats[f].filename
}

// ContentType returns the artifact media type for f.
func (f Format) ContentType() string {
	return formats[f].contentType
}

func formatForFilename(name string) (Format, bool) {
	i := slices.IndexFunc(Formats(), func(f Format) bool {
		return f.Filename() == name
	})
	if i < 0 {
		return "", false
	}
	return Formats()[i], true
}
