// Package docfile reads declarative document descriptions from YAML, JSON
// and TOML files and builds them into documents.
//
// A file holds an optional page width hint and a document node:
//
//	width: 40
//	document:
//	  cat:
//	    - "println("
//	    - align:
//	        spread: [lol, very long thing, toto]
//	    - ")"
package docfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/fsutil"
)

// rootPath names the document node in error paths.
const rootPath = "document"

// File is a decoded document file.
type File struct {
	// Width is the page width hint of the file, 0 when absent.
	Width int

	// Document is the built document.
	Document *doc.Doc
}

// raw mirrors the top level of a document file before the node is built.
type raw struct {
	Width    int `json:"width"    toml:"width"    yaml:"width"`
	Document any `json:"document" toml:"document" yaml:"document"`
}

// Decode parses data in the given format and builds its document.
// FormatAuto is not accepted here; use DetectFormat first.
func Decode(data []byte, format Format) (*File, error) {
	var (
		r   raw
		err error
	)

	switch format {
	case FormatYAML:
		err = decodeYAML(data, &r)
	case FormatJSON:
		err = decodeJSON(data, &r)
	case FormatTOML:
		err = decodeTOML(data, &r)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	if r.Width < 0 {
		return nil, fmt.Errorf("%w: width: must not be negative, got %d", ErrInvalidNode, r.Width)
	}
	if r.Document == nil {
		return nil, fmt.Errorf("%w: %s: missing", ErrInvalidNode, rootPath)
	}

	d, err := Build(r.Document)
	if err != nil {
		return nil, err
	}

	return &File{Width: r.Width, Document: d}, nil
}

// Open reads and decodes the document file at path. FormatAuto detects the
// format from the file extension.
func Open(ctx context.Context, path string, format Format) (*File, error) {
	if format == "" || format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	file, err := Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func decodeYAML(data []byte, r *raw) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func decodeJSON(data []byte, r *raw) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	decoder.UseNumber()
	return decoder.Decode(r)
}

func decodeTOML(data []byte, r *raw) error {
	meta, err := toml.Decode(string(data), r)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %v", keys)
	}
	return nil
}
