package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/prettydoc/pkg/config"
)

// envVarPrefix is the prefix for all prettydoc environment variables.
const envVarPrefix = "PRETTYDOC_"

// envSetter applies one environment variable value to the config.
type envSetter struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"WIDTH": {
		description: "Page width in columns (0 = auto)",
		apply: func(cfg *config.Config, value string) error {
			width, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer for %sWIDTH: %q", envVarPrefix, value)
			}
			cfg.Width = width
			return nil
		},
	},
	"MEASURE": {
		description: "Text width measure: display, runes or bytes",
		apply: func(cfg *config.Config, value string) error {
			cfg.Measure = value
			return nil
		},
	},
	"FLAVOR": {
		description: "Markdown flavor for reflow: commonmark or gfm",
		apply: func(cfg *config.Config, value string) error {
			cfg.Flavor = config.Flavor(value)
			return nil
		},
	},
	"REPORT": {
		description: "Width report format: text or json",
		apply: func(cfg *config.Config, value string) error {
			cfg.Report = config.ReportFormat(value)
			return nil
		},
	},
	"COLOR": {
		description: "Colorize output: auto, always or never",
		apply: func(cfg *config.Config, value string) error {
			cfg.Color = value
			return nil
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PRETTYDOC_ (e.g., PRETTYDOC_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, setter := range envMappings {
		value := os.Getenv(envVarPrefix + suffix)
		if value == "" {
			continue
		}
		if err := setter.apply(cfg, value); err != nil {
			return err
		}
	}

	return nil
}

// ListEnvVars returns the supported environment variables with their
// descriptions, sorted by name.
func ListEnvVars() [][2]string {
	vars := make([][2]string, 0, len(envMappings))
	for suffix, setter := range envMappings {
		vars = append(vars, [2]string{envVarPrefix + suffix, setter.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i][0] < vars[j][0] })
	return vars
}
