package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/prettydoc/internal/ui/pretty"
	"github.com/yaklabco/prettydoc/pkg/analysis"
)

// TextReporter formats reports as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, reports []*analysis.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if len(reports) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return nil
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if report == nil || (report.Fits() && !r.opts.ShowFitting) {
			continue
		}
		r.reportFile(report)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(analysis.Summarize(reports)))
	}

	return nil
}

func (r *TextReporter) reportFile(report *analysis.Report) {
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(report))

	path := report.Path
	if path == "" {
		path = "<stdin>"
	}
	for _, overflow := range report.Overflows {
		fmt.Fprint(r.bw, r.styles.FormatOverflow(path, report.Width, overflow, r.opts.ShowContext))
	}

	if r.opts.ShowStats && report.Document != nil {
		fmt.Fprint(r.bw, r.styles.FormatDocumentStats(report.Document))
	}

	// Blank line between files
	fmt.Fprintln(r.bw)
}
