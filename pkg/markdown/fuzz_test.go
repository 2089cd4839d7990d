package markdown_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/prettydoc/pkg/markdown"
	"github.com/yaklabco/prettydoc/pkg/render"
)

// FuzzConvert fuzzes conversion and rendering with random Markdown.
func FuzzConvert(f *testing.F) {
	seeds := []string{
		"",
		"Hello, world!",
		"# Heading",
		"- list item\n- another",
		"1. ordered item",
		"> blockquote\n> - item",
		"```\ncode\n```",
		"    indented code",
		"*emphasis* and `code` and [link](url \"title\")",
		"line one  \nline two",
		"| a | b |\n|---|:-:|\n| 1 | 2 |",
		"- [ ] task\n- [x] done",
		"<div>\nhtml\n</div>",
		"text\r\nwith CRLF",
		"word - 1. # > +",
		"```\na\rb\n```",
		"<div>\na\rb\n</div>",
		"    a\rb",
		"> ```\n> a\rb\n> ```",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	converter := markdown.New(markdown.FlavorGFM)

	f.Fuzz(func(t *testing.T, data []byte) {
		d, err := converter.Convert(data)
		if err != nil {
			return
		}

		// Rendering never panics and never leaves trailing blanks.
		for _, width := range []int{0, 8, 80} {
			for _, line := range strings.Split(render.Render(d, width), "\n") {
				if strings.TrimRight(line, " \t") != line {
					t.Fatalf("trailing whitespace at width %d: %q", width, line)
				}
			}
		}
	})
}
