package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/prettydoc/pkg/analysis"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats report totals as a single line.
// Example: "3 overflowing lines in 2 files (5 files checked, widest line 93)".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked, widest line %d)",
		totals.Files, plural(totals.Files, "file", "files"), totals.MaxWidth))

	if totals.Fits() {
		return s.Success.Render("All lines fit") + checked + "\n"
	}

	return s.Failure.Render(fmt.Sprintf("%d overflowing %s", totals.Overflows, plural(totals.Overflows, "line", "lines"))) +
		fmt.Sprintf(" in %d %s", totals.FilesOverflowing, plural(totals.FilesOverflowing, "file", "files")) +
		checked + "\n"
}

// FormatDocumentStats formats document statistics as a block.
func (s *Styles) FormatDocumentStats(stats *analysis.DocumentStats) string {
	if stats == nil {
		return ""
	}

	var builder strings.Builder
	row := func(label string, value int) {
		builder.WriteString(fmt.Sprintf("  %-16s%s\n", label+":", s.SummaryValue.Render(strconv.Itoa(value))))
	}

	builder.WriteString(s.SummaryTitle.Render("Document") + "\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth) + "\n")
	row("Nodes", stats.Nodes)
	row("Unique nodes", stats.UniqueNodes)
	row("Depth", stats.Depth)
	row("Groups tried", stats.Alternatives)
	row("Groups broken", stats.Fallbacks)

	return builder.String()
}
