package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/logging"
	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/fsutil"
)

type reflowFlags struct {
	flavor string
	write  bool
	backup bool
}

func newReflowCommand() *cobra.Command {
	cfg := &config.Config{}
	flags := &reflowFlags{}

	cmd := &cobra.Command{
		Use:   "reflow FILE...",
		Short: "Reflow Markdown files to a page width",
		Long:  reflowLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("flavor") {
				cfg.Flavor = config.Flavor(flags.flavor)
			}
			return runReflow(cmd, args, cfg, flags)
		},
	}

	cmd.Flags().IntVarP(&cfg.Width, "width", "w", 0, "page width (0 = terminal or 80)")
	cmd.Flags().StringVar(&cfg.Measure, "measure", "", "text width measure: display, runes, bytes")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "write the reflowed text to a file")
	cmd.Flags().BoolVar(&flags.write, "write", false, "rewrite each file in place")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a backup of files rewritten with --write")
	cmd.MarkFlagsMutuallyExclusive("output", "write")

	return cmd
}

const reflowLongDescription = `Reflow Markdown files so paragraphs fill the page width.

Paragraphs, list items and block quotes are refilled; headings, code blocks,
tables and HTML are kept as they are. Use "-" to read from standard input.

Examples:
  prettydoc reflow README.md                  # Print the reflowed file
  prettydoc reflow -w 72 --write docs/*.md    # Rewrite files in place
  prettydoc reflow --write --backup notes.md  # Keep notes.md.prettydoc.bak
  prettydoc reflow --flavor gfm CHANGELOG.md  # Keep tables and task lists`

func runReflow(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *reflowFlags) error {
	if cliCfg.Output != "" && len(args) > 1 {
		return errors.New("--output accepts a single input file")
	}
	if flags.backup && !flags.write {
		return errors.New("--backup requires --write")
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
	for _, path := range args {
		src, err := loadSource(cmd, cfg, path, true)
		if err != nil {
			return err
		}

		fileCtx := logging.WithFile(ctx, src.displayPath())
		text, _ := renderSource(fileCtx, src, pageWidth(fileCtx, cmd, cfg, src), opts)

		if !flags.write {
			if err := writeOutput(cmd, cfg.Output, text); err != nil {
				return err
			}
			continue
		}

		if src.snapshot == nil {
			return fmt.Errorf("cannot rewrite %q in place", path)
		}
		changed, err := fsutil.Replace(fileCtx, src.snapshot, []byte(text+"\n"), flags.backup)
		if err != nil {
			return fmt.Errorf("rewrite %s: %w", path, err)
		}
		logger := logging.FromContext(fileCtx)
		if changed {
			logger.Info("reflowed")
		} else {
			logger.Debug("already reflowed")
		}
	}

	return nil
}
