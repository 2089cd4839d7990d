// Package markdown converts Markdown into documents whose paragraphs are
// filled to the page width, so that rendering the result reflows the text.
//
// Only the layout changes: headings stay on one line, code and HTML blocks
// keep their lines verbatim, and list items and block quotes indent their
// continuation lines under their first one.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/prettydoc/pkg/doc"
)

// Markdown flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Converter parses Markdown of one flavor and builds documents from it.
type Converter struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a Converter for the given flavor. Unknown flavors fall back
// to CommonMark.
func New(flavor string) *Converter {
	f := flavorOrDefault(flavor)
	return &Converter{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (c *Converter) Flavor() string {
	return c.flavor
}

// Convert parses src and returns its reflowable document.
func (c *Converter) Convert(src []byte) (*doc.Doc, error) {
	content := make([]byte, len(src))
	copy(content, src)

	root := c.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	b := &builder{source: content}
	d := b.blocks(root)
	if b.err != nil {
		return nil, b.err
	}
	return d, nil
}

// Convert is New(FlavorCommonMark).Convert(src).
func Convert(src []byte) (*doc.Doc, error) {
	return New(FlavorCommonMark).Convert(src)
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
