// Package render turns documents into text for a page width.
package render

import (
	"strings"

	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/layout"
)

// Render lays out d for the page width and returns the resulting text.
// Trailing spaces and tabs are removed from every line.
func Render(d *doc.Doc, width int) string {
	return RenderWith(d, width, layout.DefaultOptions())
}

// RenderWith is Render with explicit layout options.
func RenderWith(d *doc.Doc, width int, opts layout.Options) string {
	return Tokens(layout.ResolveWith(width, d, opts))
}

// Tokens consumes the stream starting at t and returns its text.
func Tokens(t *layout.Token) string {
	var b strings.Builder

	for ; t != nil && t.Kind != layout.TokenEnd; t = t.Next() {
		switch t.Kind {
		case layout.TokenText:
			b.WriteString(t.Text)
		case layout.TokenBreak:
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", max(t.Indent, 0)))
		}
	}

	return TrimTrailing(b.String())
}

// TrimTrailing removes trailing spaces and tabs from every line of s.
func TrimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
