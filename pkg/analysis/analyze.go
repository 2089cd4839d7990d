// Package analysis measures rendered text against its page width.
package analysis

import (
	"strings"

	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/layout"
)

// Analyze measures every line of output with measure (layout.RuneCount
// when nil) and records the lines wider than width. A trailing newline does
// not start another line.
func Analyze(output string, width int, measure layout.Measure) *Report {
	if measure == nil {
		measure = layout.RuneCount
	}

	report := &Report{Width: width}
	if output == "" {
		return report
	}

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	report.Lines = len(lines)

	for i, line := range lines {
		w := measure(line)
		report.MaxWidth = max(report.MaxWidth, w)
		if w > width {
			report.Overflows = append(report.Overflows, Overflow{Line: i + 1, Width: w, Text: line})
		}
	}

	return report
}

// Describe collects tree statistics for d and the layout counters gathered
// while rendering it.
func Describe(d *doc.Doc, layoutStats layout.Stats) *DocumentStats {
	counts := doc.Count(d)
	return &DocumentStats{
		Nodes:        counts.Nodes,
		UniqueNodes:  counts.Unique,
		Depth:        counts.Depth,
		Alternatives: layoutStats.Alternatives,
		Fallbacks:    layoutStats.Fallbacks,
	}
}

// Summarize aggregates reports.
func Summarize(reports []*Report) Totals {
	var totals Totals
	for _, r := range reports {
		if r == nil {
			continue
		}
		totals.Files++
		totals.Lines += r.Lines
		totals.Overflows += len(r.Overflows)
		totals.MaxWidth = max(totals.MaxWidth, r.MaxWidth)
		if !r.Fits() {
			totals.FilesOverflowing++
		}
	}
	return totals
}
