package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/logging"
	"github.com/yaklabco/prettydoc/pkg/analysis"
	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/reporter"
)

type checkFlags struct {
	report    string
	flavor    string
	noContext bool
	all       bool
	stats     bool
	compact   bool
}

func newCheckCommand() *cobra.Command {
	cfg := &config.Config{}
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report lines that overflow the page width",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("report") {
				cfg.Report = config.ReportFormat(flags.report)
			}
			if cmd.Flags().Changed("flavor") {
				cfg.Flavor = config.Flavor(flags.flavor)
			}
			return runCheck(cmd, args, cfg, flags)
		},
	}

	cmd.Flags().IntVarP(&cfg.Width, "width", "w", 0, "page width (0 = document hint, terminal or 80)")
	cmd.Flags().StringVar(&cfg.Measure, "measure", "", "text width measure: display, runes, bytes")
	cmd.Flags().StringVar(&cfg.InputFormat, "format", "auto", "document file format: auto, yaml, json, toml")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.report, "report", "text", "report format: text, json")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide overflowing lines in text reports")
	cmd.Flags().BoolVar(&flags.all, "all", false, "list files whose lines all fit")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "include document statistics")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

const checkLongDescription = `Render files and report every line wider than the page width.

Markdown files (.md, .markdown) are reflowed first; other files are read as
document files. The command fails when any line overflows.

Examples:
  prettydoc check -w 40 call.yaml        # Check one document
  prettydoc check --stats docs/*.md      # Include node counts and decisions
  prettydoc check --report json a.yaml   # Machine-readable report`

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags) error {
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := layoutOptions(cfg)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Report))
	if err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	ctx := commandContext(cmd)
	reports := make([]*analysis.Report, 0, len(args))

	for _, path := range args {
		src, err := loadSource(cmd, cfg, path, isMarkdown(path))
		if err != nil {
			return err
		}

		fileCtx := logging.WithFile(ctx, src.displayPath())
		_, report := renderSource(fileCtx, src, pageWidth(fileCtx, cmd, cfg, src), opts)
		if !flags.stats {
			report.Document = nil
		}
		reports = append(reports, report)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		ShowFitting: flags.all,
		ShowStats:   flags.stats,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, reports); err != nil {
		logging.FromContext(ctx).Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if !analysis.Summarize(reports).Fits() {
		return ErrOverflow
	}
	return nil
}
