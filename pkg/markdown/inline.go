package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/prettydoc/pkg/doc"
)

// blockStart matches words that would open a block (list item, heading,
// quote, thematic break, setext underline or code fence) if a reflow moved
// them to the start of a line.
//
//nolint:gochecknoglobals // Compiled once.
var blockStart = regexp.MustCompile("^(?:[-+*]|#{1,6}|>.*|[0-9]{1,9}[.)]|=+|-+|[*_]{3,}|```.*|~~~.*)$")

// paragraph fills the words of each line of a paragraph. Hard line breaks
// are kept, marked with a trailing backslash.
func (b *builder) paragraph(p ast.Node) *doc.Doc {
	lines := b.inline(p)
	parts := make([]*doc.Doc, 0, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			line += `\`
		}
		parts = append(parts, b.fill(line))
	}
	return separated(parts, b.lineBreak())
}

// fill packs the words of line. A word that would start a block is kept on
// the line of the word before it.
func (b *builder) fill(line string) *doc.Doc {
	var parts []any
	for i, word := range strings.Fields(line) {
		w := b.text(word)
		if i > 0 && blockStart.MatchString(word) {
			parts[len(parts)-1] = parts[len(parts)-1].(*doc.Doc).Spaced(w)
			continue
		}
		parts = append(parts, w)
	}
	return doc.Fill(parts...)
}

// inline writes the inline content of node back as Markdown source, one
// string per line between hard line breaks. Soft line breaks become spaces.
func (b *builder) inline(node ast.Node) []string {
	w := &inlineWriter{}
	b.writeChildren(w, node)
	return append(w.lines, w.current.String())
}

type inlineWriter struct {
	lines   []string
	current strings.Builder
}

func (w *inlineWriter) write(s string) {
	w.current.WriteString(s)
}

func (w *inlineWriter) hardBreak() {
	w.lines = append(w.lines, w.current.String())
	w.current.Reset()
}

func (b *builder) writeChildren(w *inlineWriter, node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		b.writeInline(w, child)
	}
}

func (b *builder) writeInline(w *inlineWriter, node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		w.write(string(n.Segment.Value(b.source)))
		switch {
		case n.HardLineBreak():
			w.hardBreak()
		case n.SoftLineBreak():
			w.write(" ")
		}

	case *ast.String:
		w.write(string(n.Value))

	case *ast.CodeSpan:
		var code strings.Builder
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Text:
				code.Write(c.Segment.Value(b.source))
			case *ast.String:
				code.Write(c.Value)
			}
		}
		w.write(codeSpan(code.String()))

	case *ast.Emphasis:
		marker := strings.Repeat("*", n.Level)
		w.write(marker)
		b.writeChildren(w, n)
		w.write(marker)

	case *ast.Link:
		w.write("[")
		b.writeChildren(w, n)
		w.write("](" + destination(n.Destination, n.Title) + ")")

	case *ast.Image:
		w.write("![")
		b.writeChildren(w, n)
		w.write("](" + destination(n.Destination, n.Title) + ")")

	case *ast.AutoLink:
		w.write("<" + string(n.Label(b.source)) + ">")

	case *ast.RawHTML:
		for i := range n.Segments.Len() {
			seg := n.Segments.At(i)
			w.write(string(seg.Value(b.source)))
		}

	case *east.Strikethrough:
		w.write("~~")
		b.writeChildren(w, n)
		w.write("~~")

	case *east.TaskCheckBox:
		if n.IsChecked {
			w.write("[x] ")
		} else {
			w.write("[ ] ")
		}

	default:
		b.writeChildren(w, n)
	}
}

// codeSpan wraps code in enough backticks that none inside close it early.
func codeSpan(code string) string {
	fence := "`"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") {
		code = " " + code + " "
	}
	return fence + code + fence
}

// destination formats a link target with its optional title.
func destination(dest, title []byte) string {
	target := string(dest)
	if target == "" || strings.ContainsAny(target, " ()") {
		target = "<" + target + ">"
	}
	if len(title) > 0 {
		target += ` "` + strings.ReplaceAll(string(title), `"`, `\"`) + `"`
	}
	return target
}
