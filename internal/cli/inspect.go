package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/render"
)

func newInspectCommand() *cobra.Command {
	cfg := &config.Config{}
	var flavor string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the document tree of a file",
		Long: `Print the tree a document file, or a Markdown file, builds.

Groups appear as alt(flat, original) pairs and chains of concatenations are
shown as a single cat(...). The description is itself laid out to the page
width.

Examples:
  prettydoc inspect call.yaml
  prettydoc inspect -w 40 README.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("flavor") {
				cfg.Flavor = config.Flavor(flavor)
			}

			resolved, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}

			src, err := loadSource(cmd, resolved, args[0], isMarkdown(args[0]))
			if err != nil {
				return err
			}

			return writeOutput(cmd, "", render.Render(doc.Inspect(src.doc), pageWidth(commandContext(cmd), cmd, resolved, src)))
		},
	}

	cmd.Flags().IntVarP(&cfg.Width, "width", "w", 0, "page width of the description")
	cmd.Flags().StringVar(&cfg.InputFormat, "format", "auto", "document file format: auto, yaml, json, toml")
	cmd.Flags().StringVar(&flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")

	return cmd
}
