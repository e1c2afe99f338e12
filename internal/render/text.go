package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()

	linkRegex = regexp.MustCompile(`(?s)<a[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	hrRegex   = regexp.MustCompile(`<hr[^>]*>`)
	blockTags = strings.NewReplacer(
		`<div class="block"`, "\n<div",
		"</h1>", "</h1>\n",
		"</p>", "</p>\n",
	)
)

// PlainText derives the text/plain alternative of canonical HTML. Buttons
// become "label (target)" and dividers a dashed rule.
func PlainText(canonical string) string {
	body := canonical
	if _, after, ok := strings.Cut(body, "<body>"); ok {
		body = after
	}

	body = linkRegex.ReplaceAllString(body, "$2 ($1)")
	body = hrRegex.ReplaceAllString(body, "\n----\n")
	body = blockTags.Replace(body)
	body = html.UnescapeString(stripPolicy.Sanitize(body))

	var lines []string
	for line := range strings.SplitSeq(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n\n")
}
