package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/logging"
	"github.com/yaklabco/prettydoc/pkg/analysis"
	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/reporter"
)

func newRenderCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render document files to a page width",
		Long:  renderLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.Width, "width", "w", 0, "page width (0 = document hint, terminal or 80)")
	cmd.Flags().StringVar(&cfg.Measure, "measure", "", "text width measure: display, runes, bytes")
	cmd.Flags().StringVar(&cfg.InputFormat, "format", "auto", "document file format: auto, yaml, json, toml")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "write the rendered text to a file")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "fail when a rendered line is wider than the page")

	return cmd
}

const renderLongDescription = `Render document files to text that fits the page width.

A document file holds an optional width hint and a document node in YAML,
JSON or TOML. The format is taken from the file extension unless --format
is given. Use "-" to read a document from standard input.

Examples:
  prettydoc render call.yaml             # Render at the resolved width
  prettydoc render -w 20 call.yaml       # Render 20 columns wide
  prettydoc render --check call.yaml     # Fail when a line overflows
  prettydoc render -o out.txt call.toml  # Write the result to a file`

func runRender(cmd *cobra.Command, args []string, cliCfg *config.Config) error {
	if cliCfg.Output != "" && len(args) > 1 {
		return errors.New("--output accepts a single input file")
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := layoutOptions(cfg)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	outputs := make([]string, 0, len(args))
	var overflowing []*analysis.Report

	for _, path := range args {
		src, err := loadSource(cmd, cfg, path, false)
		if err != nil {
			return err
		}

		fileCtx := logging.WithFile(ctx, src.displayPath())
		text, report := renderSource(fileCtx, src, pageWidth(fileCtx, cmd, cfg, src), opts)
		outputs = append(outputs, text)
		if !report.Fits() {
			overflowing = append(overflowing, report)
		}
	}

	if err := writeOutput(cmd, cfg.Output, strings.Join(outputs, "\n")); err != nil {
		return err
	}

	if cfg.Check && len(overflowing) > 0 {
		rep := reporter.NewTextReporter(reporter.Options{
			Writer:      cmd.ErrOrStderr(),
			Color:       cfg.Color,
			ShowContext: true,
		})
		if err := rep.Report(ctx, overflowing); err != nil {
			logging.FromContext(ctx).Error("report failed", logging.FieldError, err)
		}
		return ErrOverflow
	}

	return nil
}
