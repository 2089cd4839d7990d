package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/configloader"
	"github.com/yaklabco/prettydoc/internal/logging"
	"github.com/yaklabco/prettydoc/pkg/analysis"
	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/docfile"
	"github.com/yaklabco/prettydoc/pkg/fsutil"
	"github.com/yaklabco/prettydoc/pkg/layout"
	"github.com/yaklabco/prettydoc/pkg/markdown"
	"github.com/yaklabco/prettydoc/pkg/render"
)

// ErrOverflow is returned when rendered output has lines wider than the page.
var ErrOverflow = errors.New("output overflows the page width")

// stdinPath names standard input on the command line.
const stdinPath = "-"

// source is a document loaded from a file or standard input.
type source struct {
	path     string
	markdown bool
	doc      *doc.Doc

	// hint is the page width hint carried by a document file.
	hint int

	// snapshot is set for Markdown files read from disk.
	snapshot *fsutil.Snapshot
}

// displayPath returns the path used in messages and reports.
func (s *source) displayPath() string {
	if s.path == stdinPath {
		return ""
	}
	return s.path
}

// isMarkdown reports whether path names a Markdown file.
func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	default:
		return false
	}
}

// loadConfig merges the configuration sources with the flags set on cmd.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = color
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldWidth, cfg.Width,
		logging.FieldMeasure, cfg.Measure,
		logging.FieldFlavor, cfg.Flavor,
	)

	return cfg, nil
}

// loadSource reads path, or standard input for "-", as a Markdown file when
// asMarkdown is set and as a document file otherwise.
func loadSource(cmd *cobra.Command, cfg *config.Config, path string, asMarkdown bool) (*source, error) {
	ctx := commandContext(cmd)
	src := &source{path: path, markdown: asMarkdown}

	var data []byte
	if path == stdinPath {
		var err error
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
	} else if asMarkdown {
		var err error
		data, src.snapshot, err = fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
	}

	if asMarkdown {
		d, err := markdown.New(string(cfg.Flavor)).Convert(data)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", path, err)
		}
		src.doc = d
		return src, nil
	}

	format, err := docfile.ParseFormat(cfg.InputFormat)
	if err != nil {
		return nil, err
	}

	var file *docfile.File
	if path == stdinPath {
		if format == docfile.FormatAuto {
			format = docfile.FormatYAML
		}
		if file, err = docfile.Decode(data, format); err != nil {
			return nil, fmt.Errorf("standard input: %w", err)
		}
	} else if file, err = docfile.Open(ctx, path, format); err != nil {
		return nil, err
	}

	src.doc = file.Document
	src.hint = file.Width
	return src, nil
}

// pageWidth resolves the page width for one source.
func pageWidth(ctx context.Context, cmd *cobra.Command, cfg *config.Config, src *source) int {
	terminal := 0
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		terminal = configloader.TerminalWidth(f.Fd())
	}

	width, from := configloader.ResolveWidth(cfg.Width, src.hint, terminal)
	logging.FromContext(ctx).Debug("page width",
		logging.FieldWidth, width,
		logging.FieldWidthSource, from,
	)
	return width
}

// layoutOptions builds the layout options selected by cfg.
func layoutOptions(cfg *config.Config) (layout.Options, error) {
	measure, err := layout.ParseMeasure(cfg.Measure)
	if err != nil {
		return layout.Options{}, err
	}
	return layout.Options{Measure: measure}, nil
}

// renderSource renders src for width and measures the result.
func renderSource(ctx context.Context, src *source, width int, opts layout.Options) (string, *analysis.Report) {
	var stats layout.Stats
	opts.Stats = &stats

	start := time.Now()
	text := render.RenderWith(src.doc, width, opts)
	elapsed := time.Since(start)

	report := analysis.Analyze(text, width, opts.Measure)
	report.Path = src.displayPath()
	report.Document = analysis.Describe(src.doc, stats)

	logging.FromContext(ctx).Debug("rendered",
		logging.FieldNodes, report.Document.Nodes,
		logging.FieldUniqueNodes, report.Document.UniqueNodes,
		logging.FieldDepth, report.Document.Depth,
		logging.FieldAlternatives, stats.Alternatives,
		logging.FieldFallbacks, stats.Fallbacks,
		logging.FieldLines, report.Lines,
		logging.FieldOverflows, len(report.Overflows),
		logging.FieldElapsed, elapsed,
	)

	return text, report
}

// writeOutput writes text followed by a newline to path, or to the command's
// output when path is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	content := text + "\n"
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}

	ctx := commandContext(cmd)
	written, err := fsutil.WriteIfChanged(ctx, path, []byte(content), fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if written {
		logging.FromContext(ctx).Info("wrote output", logging.FieldPath, path)
	} else {
		logging.FromContext(ctx).Debug("output unchanged", logging.FieldPath, path)
	}
	return nil
}

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
