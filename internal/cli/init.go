package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/configloader"
	"github.com/yaklabco/prettydoc/internal/logging"
	"github.com/yaklabco/prettydoc/pkg/config"
)

// defaultConfigFile is the project configuration file created by init.
const defaultConfigFile = ".prettydoc.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
	width  int
	flavor string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new prettydoc configuration file",
		Long: `Create a new .prettydoc.yml configuration file in the current directory
with every option documented. The file is found by any prettydoc command run
in this directory or below it.

Examples:
  prettydoc init                     Create .prettydoc.yml
  prettydoc init --width 72          Set the page width in the new file
  prettydoc init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Page width to write (0 = automatic)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", string(config.FlavorCommonMark), "Markdown flavor to write")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	cfg := config.NewConfig()
	cfg.Width = flags.width
	cfg.Flavor = config.Flavor(flags.flavor)

	validation := configloader.Validate(cfg)
	if !validation.Valid() {
		return &validation.Errors[0]
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return err
	}

	if err := configloader.WriteTemplate(commandContext(cmd), absPath, cfg, flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("customize your configuration by editing the file")

	return nil
}
