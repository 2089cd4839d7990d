package configloader

import "github.com/yaklabco/prettydoc/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Zero values in override leave base untouched; booleans can only be turned on.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Measure != "" {
		result.Measure = override.Measure
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Report != "" {
		result.Report = override.Report
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.InputFormat != "" {
		result.InputFormat = override.InputFormat
	}
	if override.Check {
		result.Check = true
	}

	return &result
}
