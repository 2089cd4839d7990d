// Package reporter writes width analysis reports as styled text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/prettydoc/pkg/analysis"
)

// Reporter formats and writes width reports.
type Reporter interface {
	// Report writes formatted output for the given reports.
	Report(ctx context.Context, reports []*analysis.Report) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
