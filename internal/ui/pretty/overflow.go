package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/prettydoc/pkg/analysis"
)

// sourceIndent aligns source lines under an overflow entry.
const sourceIndent = "        "

// FormatFileHeader formats the heading line of a file's width report.
// Example: "docs/call.yaml  width 40, 12 lines, widest 38".
func (s *Styles) FormatFileHeader(report *analysis.Report) string {
	path := report.Path
	if path == "" {
		path = "<stdin>"
	}
	return s.FilePath.Render(path) + "  " + s.Dim.Render(fmt.Sprintf("width %d, %d %s, widest %d",
		report.Width, report.Lines, plural(report.Lines, "line", "lines"), report.MaxWidth))
}

// FormatOverflow formats one overflowing line with its source and a caret
// under the first column past the page width.
func (s *Styles) FormatOverflow(path string, width int, overflow analysis.Overflow, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d", s.FilePath.Render(path), overflow.Line)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Overflow.Render(fmt.Sprintf("%d columns", overflow.Width)),
		s.Location.Render(fmt.Sprintf("(%d over)", overflow.Width-width)),
	))

	if showContext {
		builder.WriteString(s.FormatSourceContext(overflow.Text, width))
	}

	return builder.String()
}

// FormatSourceContext writes line with the part past width highlighted and
// a caret marking where it starts.
func (s *Styles) FormatSourceContext(line string, width int) string {
	fits := runewidth.Truncate(line, width, "")
	excess := line[len(fits):]

	var builder strings.Builder
	builder.WriteString(sourceIndent + s.SourceLine.Render(fits) + s.Excess.Render(excess) + "\n")
	builder.WriteString(sourceIndent + strings.Repeat(" ", runewidth.StringWidth(fits)) + s.Caret.Render("^") + "\n")
	return builder.String()
}

// FormatRuler returns a column ruler of the given width: a digit every ten
// columns, a plus sign every five and dashes in between.
func (s *Styles) FormatRuler(width int) string {
	var builder strings.Builder
	for col := 1; col <= width; col++ {
		switch {
		case col%10 == 0:
			builder.WriteByte(byte('0' + (col/10)%10))
		case col%5 == 0:
			builder.WriteByte('+')
		default:
			builder.WriteByte('-')
		}
	}
	return s.Ruler.Render(builder.String())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
