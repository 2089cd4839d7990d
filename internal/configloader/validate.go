package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/docfile"
	"github.com/yaklabco/prettydoc/pkg/layout"
)

// maxWidth bounds configured page widths.
const maxWidth = 10_000

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns all error messages.
func (r *ValidationResult) Messages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Error())
	}
	return messages
}

func (r *ValidationResult) add(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Width < 0 || cfg.Width > maxWidth {
		result.add("width", cfg.Width, "width must be between 0 and %d (0 means auto)", maxWidth)
	}

	if _, err := layout.ParseMeasure(cfg.Measure); err != nil {
		result.add("measure", cfg.Measure, "%v", err)
	}

	switch cfg.Flavor {
	case "", config.FlavorCommonMark, config.FlavorGFM:
	default:
		result.add("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.Report != "" && !cfg.Report.IsValid() {
		result.add("report", cfg.Report, "invalid report format %q; must be one of: text, json", cfg.Report)
	}

	switch cfg.Color {
	case "", config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		result.add("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.InputFormat != "" {
		if _, err := docfile.ParseFormat(cfg.InputFormat); err != nil {
			result.add("format", cfg.InputFormat, "%s", strings.TrimPrefix(err.Error(), "docfile: "))
		}
	}

	return result
}
