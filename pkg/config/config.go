// Package config defines core configuration types for prettydoc.
// These types are pure data structures with no dependency on how they are loaded.
package config

// Flavor specifies the Markdown flavor used by the reflow command.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// ReportFormat specifies the output format of width reports.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
)

// IsValid returns true if the report format is known.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportText, ReportJSON:
		return true
	default:
		return false
	}
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultWidth is the page width used when nothing else decides it.
const DefaultWidth = 80

// Config is the root configuration structure for prettydoc.
type Config struct {
	// Width is the page width. Zero means automatic: the document's own
	// hint, then the terminal width, then DefaultWidth.
	Width int `yaml:"width"`

	// Measure selects how text width is counted: display, runes or bytes.
	Measure string `yaml:"measure"`

	// Flavor is the Markdown flavor used by reflow.
	Flavor Flavor `yaml:"flavor"`

	// Report is the output format of width reports.
	Report ReportFormat `yaml:"report"`

	// Color controls colorized output: auto, always or never.
	Color string `yaml:"color"`

	// CLI-level options (not persisted to config files).

	// Output is a file to write rendered text to instead of stdout.
	Output string `yaml:"-"`

	// InputFormat forces the document file format (yaml, json, toml).
	InputFormat string `yaml:"-"`

	// Check makes rendering fail when a line overflows the width.
	Check bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   0,
		Measure: "display",
		Flavor:  FlavorCommonMark,
		Report:  ReportText,
		Color:   ColorAuto,
	}
}
