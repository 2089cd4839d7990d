package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/render"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// templateHeader starts every generated configuration file.
const templateHeader = `# prettydoc configuration
# See: https://github.com/yaklabco/prettydoc
`

// templateField documents one configuration key.
type templateField struct {
	key         string
	value       string
	description string
}

// templateFields lists the documented keys in file order.
func templateFields(cfg *Config) []templateField {
	return []templateField{
		{
			key:   "width",
			value: fmt.Sprint(cfg.Width),
			description: fmt.Sprintf("Page width in columns. 0 means automatic: the width hint of the "+
				"document file, then the terminal width when writing to a terminal, then %d.", DefaultWidth),
		},
		{
			key:   "measure",
			value: cfg.Measure,
			description: "How the width of text is counted. display counts terminal cells, so " +
				"wide characters take two columns; runes counts code points; bytes counts UTF-8 bytes.",
		},
		{
			key:         "flavor",
			value:       string(cfg.Flavor),
			description: "Markdown flavor used by reflow: commonmark or gfm.",
		},
		{
			key:         "report",
			value:       string(cfg.Report),
			description: "Output format of width reports written by check: text or json.",
		},
		{
			key:         "color",
			value:       cfg.Color,
			description: "Colorize output: auto, always or never. auto honors NO_COLOR and only colors terminals.",
		},
	}
}

// GenerateTemplate creates a commented configuration file holding the
// values of cfg, or the defaults when cfg is nil.
func GenerateTemplate(cfg *Config) []byte {
	if cfg == nil {
		cfg = NewConfig()
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	for _, field := range templateFields(cfg) {
		buf.WriteByte('\n')
		buf.WriteString(wrapComment(field.description))
		fmt.Fprintf(&buf, "%s: %s\n", field.key, field.value)
	}

	return buf.Bytes()
}

// wrapComment fills text into "# " prefixed lines of at most commentWrapWidth columns.
func wrapComment(text string) string {
	const prefix = "# "

	filled := render.Render(doc.FillWords(text), commentWrapWidth-len(prefix))

	var b strings.Builder
	for _, line := range strings.Split(filled, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
