package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/prettydoc/pkg/doc"
)

// builder converts a goldmark AST into a document.
//
// Container blocks (list items and block quotes) place their body at the
// column after their marker with doc.Align. Inside a block quote every
// line that is not a paragraph continuation must repeat the quote markers,
// so those lines are started at column zero and written with prefix.
type builder struct {
	source []byte
	err    error

	// prefix is what a line inside the current containers starts with,
	// e.g. "> " inside a quote or "> " plus two spaces inside a quoted
	// list item.
	prefix string
	quoted bool
}

func (b *builder) text(s string) *doc.Doc {
	d, err := doc.NewText(s)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("markdown: %w", err)
		}
		return doc.Empty()
	}
	return d
}

// within builds fn's document inside a container whose continuation lines
// start with marker.
func (b *builder) within(marker string, quote bool, fn func() *doc.Doc) *doc.Doc {
	prefix, quoted := b.prefix, b.quoted
	b.prefix += marker
	b.quoted = b.quoted || quote
	defer func() { b.prefix, b.quoted = prefix, quoted }()
	return fn()
}

// lineBreak starts a new line inside the current containers.
func (b *builder) lineBreak() *doc.Doc {
	if !b.quoted {
		return doc.HardLine()
	}
	return doc.Nest(-len(b.prefix), doc.HardLine()).Cat(b.text(b.prefix))
}

// blankLine ends the current block and leaves one empty line.
func (b *builder) blankLine() *doc.Doc {
	return b.lineBreak().Cat(b.lineBreak())
}

// separated joins parts, putting sep between neighbors.
func separated(parts []*doc.Doc, sep *doc.Doc) *doc.Doc {
	return doc.Fold(parts, func(x, y *doc.Doc) *doc.Doc {
		return x.Cat(sep).Cat(y)
	})
}

// blocks joins the block children of parent with blank lines.
func (b *builder) blocks(parent ast.Node) *doc.Doc {
	return separated(b.children(parent), b.blankLine())
}

func (b *builder) children(parent ast.Node) []*doc.Doc {
	var parts []*doc.Doc
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		parts = append(parts, b.block(child))
	}
	return parts
}

func (b *builder) block(node ast.Node) *doc.Doc {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return b.paragraph(n)

	case *ast.Heading:
		return b.heading(n)

	case *ast.ThematicBreak:
		return b.text("---")

	case *ast.List:
		return b.list(n)

	case *ast.Blockquote:
		return b.blockquote(n)

	case *ast.FencedCodeBlock:
		return b.fencedCode(n)

	case *ast.CodeBlock:
		return b.indentedCode(n)

	case *ast.HTMLBlock:
		lines := b.lines(n)
		if n.HasClosure() {
			lines = append(lines, trimEOL(string(n.ClosureLine.Value(b.source))))
		}
		return b.verbatim(lines)

	case *east.Table:
		return b.table(n)

	default:
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			return b.verbatim(b.lines(n))
		}
		return b.blocks(n)
	}
}

// verbatim keeps lines exactly as given.
func (b *builder) verbatim(lines []string) *doc.Doc {
	if !b.quoted {
		return doc.TextBlock(lines...)
	}
	var parts []*doc.Doc
	for _, line := range lines {
		for _, part := range doc.SplitLines(line) {
			parts = append(parts, b.text(part))
		}
	}
	return separated(parts, b.lineBreak())
}

func (b *builder) heading(h *ast.Heading) *doc.Doc {
	marker := strings.Repeat("#", h.Level)
	content := strings.Join(strings.Fields(strings.Join(b.inline(h), " ")), " ")
	if content == "" {
		return b.text(marker)
	}
	return b.text(marker + " " + content)
}

func (b *builder) list(l *ast.List) *doc.Doc {
	var items []*doc.Doc

	number := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d%c ", number, l.Marker)
			number++
		}

		body := b.within(strings.Repeat(" ", len(marker)), false, func() *doc.Doc {
			sep := b.blankLine()
			if l.IsTight {
				sep = b.lineBreak()
			}
			return separated(b.children(item), sep)
		})
		items = append(items, b.text(marker).Cat(doc.Align(body)))
	}

	if l.IsTight {
		return separated(items, b.lineBreak())
	}
	return separated(items, b.blankLine())
}

func (b *builder) blockquote(q *ast.Blockquote) *doc.Doc {
	const marker = "> "

	body := b.within(marker, true, func() *doc.Doc {
		return b.blocks(q)
	})
	return b.text(marker).Cat(doc.Align(body))
}

func (b *builder) fencedCode(code *ast.FencedCodeBlock) *doc.Doc {
	fence := b.detectFence(code)
	info := ""
	if code.Info != nil {
		info = string(code.Info.Segment.Value(b.source))
	}

	lines := []string{fence + info}
	lines = append(lines, b.lines(code)...)
	lines = append(lines, fence)
	return b.verbatim(lines)
}

func (b *builder) indentedCode(code *ast.CodeBlock) *doc.Doc {
	body := b.lines(code)

	fence := "```"
	for _, line := range body {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			fence = "~~~"
			break
		}
	}

	lines := append([]string{fence}, body...)
	lines = append(lines, fence)
	return b.verbatim(lines)
}

// lines returns the source lines of a leaf block without line endings.
// Padding left over from tab expansion is restored as spaces.
func (b *builder) lines(node ast.Node) []string {
	segments := node.Lines()
	lines := make([]string, segments.Len())
	for i := range segments.Len() {
		seg := segments.At(i)
		lines[i] = strings.Repeat(" ", seg.Padding) + trimEOL(string(seg.Value(b.source)))
	}
	return lines
}

// detectFence finds the opening fence of a code block in the source: the
// line before its first content line.
func (b *builder) detectFence(code *ast.FencedCodeBlock) string {
	const fallback = "```"

	segments := code.Lines()
	if segments.Len() == 0 {
		return fallback
	}

	lineStart := segments.At(0).Start
	for lineStart > 0 && b.source[lineStart-1] != '\n' {
		lineStart--
	}
	if lineStart == 0 {
		return fallback
	}

	prevEnd := lineStart - 1
	prevStart := prevEnd
	for prevStart > 0 && b.source[prevStart-1] != '\n' {
		prevStart--
	}

	line := strings.TrimLeft(string(b.source[prevStart:prevEnd]), " \t>")
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return fallback
	}

	n := 0
	for n < len(line) && line[n] == line[0] {
		n++
	}
	if n < len(fallback) {
		return fallback
	}
	return line[:n]
}

func (b *builder) table(t *east.Table) *doc.Doc {
	var rows []string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.Join(strings.Fields(strings.Join(b.inline(cell), " ")), " "))
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")

		if _, ok := row.(*east.TableHeader); ok {
			delims := make([]string, len(t.Alignments))
			for i, align := range t.Alignments {
				delims[i] = delimiter(align)
			}
			rows = append(rows, "| "+strings.Join(delims, " | ")+" |")
		}
	}
	return b.verbatim(rows)
}

func delimiter(align east.Alignment) string {
	switch align {
	case east.AlignLeft:
		return ":---"
	case east.AlignRight:
		return "---:"
	case east.AlignCenter:
		return ":---:"
	default:
		return "---"
	}
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
