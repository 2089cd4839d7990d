package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/prettydoc/pkg/analysis"
)

// jsonVersion is the version of the JSON report layout.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string             `json:"version"`
	Files   []*analysis.Report `json:"files"`
	Summary analysis.Totals    `json:"summary"`
}

// JSONReporter formats reports as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, reports []*analysis.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]*analysis.Report, 0, len(reports)),
		Summary: analysis.Summarize(reports),
	}
	for _, report := range reports {
		if report != nil {
			output.Files = append(output.Files, report)
		}
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}
