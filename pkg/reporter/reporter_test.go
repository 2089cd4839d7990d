package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prettydoc/pkg/analysis"
	"github.com/yaklabco/prettydoc/pkg/reporter"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &reporter.TextReporter{}, rep)

	rep, err = reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)
	assert.IsType(t, &reporter.JSONReporter{}, rep)

	_, err = reporter.New(reporter.Options{Writer: &buf, Format: "xml"})
	require.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
}

func TestTextReporter_NoReports(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	require.NoError(t, rep.Report(context.Background(), nil))
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestTextReporter_WithOverflows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
	})

	require.NoError(t, rep.Report(context.Background(), createTestReports()))

	output := buf.String()
	assert.Contains(t, output, "wide.yaml  width 5, 2 lines, widest 7")
	assert.Contains(t, output, "wide.yaml:2  7 columns  (2 over)")
	assert.Contains(t, output, "        abcdefg\n")
	assert.NotContains(t, output, "narrow.yaml", "fitting files are hidden by default")
	assert.True(t, strings.HasSuffix(output, "1 overflowing line in 1 file (2 files checked, widest line 7)\n"))
}

func TestTextReporter_ShowFittingAndStats(t *testing.T) {
	t.Parallel()

	reports := createTestReports()
	reports[1].Document = &analysis.DocumentStats{Nodes: 3, UniqueNodes: 3, Depth: 2}

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowFitting: true,
		ShowStats:   true,
	})

	require.NoError(t, rep.Report(context.Background(), reports))

	output := buf.String()
	assert.Contains(t, output, "narrow.yaml  width 5, 1 line, widest 3")
	assert.Contains(t, output, "  Nodes:          3\n")
	assert.NotContains(t, output, "abcdefg", "context is off")
	assert.NotContains(t, output, "files checked")
}

func TestTextReporter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})
	require.ErrorIs(t, rep.Report(ctx, createTestReports()), context.Canceled)
}

func TestJSONReporter_NoReports(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})
	require.NoError(t, rep.Report(context.Background(), nil))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
	assert.Equal(t, 0, output.Summary.Files)
}

func TestJSONReporter_WithOverflows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})
	require.NoError(t, rep.Report(context.Background(), createTestReports()))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 2)
	assert.Equal(t, "wide.yaml", output.Files[0].Path)
	require.Len(t, output.Files[0].Overflows, 1)
	assert.Equal(t, analysis.Overflow{Line: 2, Width: 7, Text: "abcdefg"}, output.Files[0].Overflows[0])
	assert.Equal(t, 1, output.Summary.Overflows)
	assert.Equal(t, 1, output.Summary.FilesOverflowing)
	assert.Contains(t, buf.String(), `"maxWidth": 7`)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})
	require.NoError(t, rep.Report(context.Background(), createTestReports()))

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "compact output is a single line")
}

func createTestReports() []*analysis.Report {
	wide := analysis.Analyze("abc\nabcdefg\n", 5, nil)
	wide.Path = "wide.yaml"

	narrow := analysis.Analyze("abc", 5, nil)
	narrow.Path = "narrow.yaml"

	return []*analysis.Report{wide, narrow}
}
