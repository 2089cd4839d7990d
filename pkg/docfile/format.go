package docfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when a document file format cannot be
// determined or is not supported.
var ErrUnknownFormat = errors.New("docfile: unknown format")

// Format is the serialization of a document file.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat converts a format name to a Format. The empty string means
// FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", string(FormatAuto):
		return FormatAuto, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatTOML):
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w %q (valid: auto, yaml, json, toml)", ErrUnknownFormat, name)
	}
}

// DetectFormat picks a format from the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: cannot tell the format of %s from its extension", ErrUnknownFormat, path)
	}
}
