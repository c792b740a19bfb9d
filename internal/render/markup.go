package render

import (
	"html"
	"strings"
)

// ToHTML converts the renderer's inline markup subset to HTML: **text**
// becomes <strong>text</strong> and newlines become <br />. The input is
// escaped first so transcript content can never inject markup of its own.
func ToHTML(content string) string {
	escaped := html.EscapeString(content)

	var b strings.Builder
	b.Grow(len(escaped))
	open := false
	rest := escaped
	for {
		idx := strings.Index(rest, "**")
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		if open {
			b.WriteString("</strong>")
		} else {
			b.WriteString("<strong>")
		}
		open = !open
		rest = rest[idx+2:]
	}
	// An unpaired delimiter leaves a dangling tag; close it rather than emit
	// broken HTML.
	if open {
		b.WriteString("</strong>")
	}

	return strings.ReplaceAll(b.String(), "\n", "<br />")
}
