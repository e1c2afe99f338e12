package render

import "strings"

// Format returns the code view of canonical HTML: a newline at every "><"
// boundary so each tag sits on its own line. No other character changes.
func Format(html string) string {
	return strings.ReplaceAll(html, "><", ">\n<")
}
