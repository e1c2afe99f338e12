package render

import (
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// ContentPolicy decides how block text is embedded into canonical HTML.
type ContentPolicy string

const (
	// PolicyEscape HTML-escapes content so it always renders as literal text.
	PolicyEscape ContentPolicy = "escape"
	// PolicySanitize keeps inline formatting markup and strips anything
	// active, such as scripts and event handlers.
	PolicySanitize ContentPolicy = "sanitize"
	// PolicyRaw embeds content verbatim.
	PolicyRaw ContentPolicy = "raw"
)

var ugcPolicy = bluemonday.UGCPolicy()

// ParseContentPolicy resolves a policy name. The empty name selects
// PolicyEscape.
func ParseContentPolicy(name string) (ContentPolicy, error) {
	switch p := ContentPolicy(name); p {
	case "":
		return PolicyEscape, nil
	case PolicyEscape, PolicySanitize, PolicyRaw:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Apply returns text prepared for embedding as element content. An unset
// or unrecognized policy escapes.
func (p ContentPolicy) Apply(text string) string {
	switch p {
	case PolicyRaw:
		return text
	case PolicySanitize:
		return ugcPolicy.Sanitize(text)
	default:
		return html.EscapeString(text)
	}
}
