package render

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// MarkdownLite converts generated analysis text to HTML. Input is
// escaped first, then bold, italic, paragraph breaks, and remaining line
// breaks are substituted in that order. Bold must run before italic or
// the single-star pattern would match inside `**` markers.
func MarkdownLite(text string) string {
	escaped := html.EscapeString(text)

	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicPattern.ReplaceAllString(escaped, "<em>$1</em>")

	paragraphs := strings.Split(escaped, "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(p, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
