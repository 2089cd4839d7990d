package markdown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prettydoc/pkg/markdown"
	"github.com/yaklabco/prettydoc/pkg/render"
)

func reflow(t *testing.T, flavor, src string, width int) string {
	t.Helper()

	d, err := markdown.New(flavor).Convert([]byte(src))
	require.NoError(t, err)
	return render.Render(d, width)
}

func TestConvert_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		width int
		want  string
	}{
		{"empty", "", 80, ""},
		{
			"paragraph fills",
			"The quick brown fox jumps over the lazy dog.\n", 20,
			"The quick brown fox\njumps over the lazy\ndog.",
		},
		{"soft breaks join", "a\nb\n", 80, "a b"},
		{"backslash hard break", "foo\\\nbar baz\n", 80, "foo\\\nbar baz"},
		{"space hard break", "foo  \nbar\n", 80, "foo\\\nbar"},
		{"atx heading", "#   Title  here\n\nText\n", 80, "# Title here\n\nText"},
		{"setext heading", "Title\n=====\n", 80, "# Title"},
		{"level three heading", "### x\n", 80, "### x"},
		{"blocks separated by blank line", "# H\npara\n", 80, "# H\n\npara"},
		{"tight list", "- one two three\n- four\n", 8, "- one\n  two\n  three\n- four"},
		{"ordered list", "1. a\n2. b\n", 80, "1. a\n2. b"},
		{"ordered list start and delimiter", "3) x\n4) y\n", 80, "3) x\n4) y"},
		{"wide ordered marker", "10. aaa bbb\n", 9, "10. aaa\n    bbb"},
		{"loose list", "- a\n\n- b\n", 80, "- a\n\n- b"},
		{"nested list", "- a\n  - b\n", 80, "- a\n  - b"},
		{"empty item", "-\n- b\n", 80, "-\n- b"},
		{
			"fenced code kept verbatim",
			"```go\nfunc main() {\n\tx := 1\n}\n```\n", 5,
			"```go\nfunc main() {\n\tx := 1\n}\n```",
		},
		{"tilde fence", "~~~~\nx\n~~~~\n", 80, "~~~~\nx\n~~~~"},
		{"indented code becomes fenced", "    code line\n", 80, "```\ncode line\n```"},
		{"code in list item", "- item\n\n  ```\n  code\n  ```\n", 80, "- item\n\n  ```\n  code\n  ```"},
		{"thematic break", "a\n\n***\n\nb\n", 80, "a\n\n---\n\nb"},
		{"block quote", "> quoted text here\n", 10, "> quoted\n  text\n  here"},
		{"block quote paragraphs", "> a\n>\n> b\n", 80, "> a\n>\n> b"},
		{"code in block quote", "> ```\n> x\n> ```\n", 80, "> ```\n> x\n> ```"},
		{"nested block quote", "> > deep\n>\n> shallow\n", 80, "> > deep\n>\n> shallow"},
		{"loose list in block quote", "> - a\n>\n> - b\n", 80, "> - a\n>\n> - b"},
		{"html block", "<div>\nhi\n</div>\n", 80, "<div>\nhi\n</div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reflow(t, markdown.FlavorCommonMark, tt.src, tt.width))
		})
	}
}

func TestConvert_Inline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"emphasis", "*em* and **strong**", "*em* and **strong**"},
		{"code span", "use `x := 1` here", "use `x := 1` here"},
		{"code span with backtick", "``a`b``", "``a`b``"},
		{"link with title", `[link](http://x.io "T")`, `[link](http://x.io "T")`},
		{"image", "![alt text](img.png)", "![alt text](img.png)"},
		{"autolink", "<http://a.b>", "<http://a.b>"},
		{"raw html", "a <b>bold</b> c", "a <b>bold</b> c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reflow(t, markdown.FlavorCommonMark, tt.src+"\n", 80))
		})
	}
}

func TestConvert_GFM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"strikethrough", "~~gone~~ now\n", "~~gone~~ now"},
		{"task list", "- [x] done\n- [ ] todo\n", "- [x] done\n- [ ] todo"},
		{
			"table",
			"| a | b | c |\n|:--|--:|:-:|\n| 1 | 2 | 3 |\n",
			"| a | b | c |\n| :--- | ---: | :---: |\n| 1 | 2 | 3 |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reflow(t, markdown.FlavorGFM, tt.src, 80))
		})
	}
}

func TestConvert_NeverStartsABlockMidParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"dash", "a b - c\n", "a b -\nc"},
		{"hash", "a b # c\n", "a b #\nc"},
		{"number", "a b 1. c\n", "a b 1.\nc"},
		{"quote marker", "a b > c\n", "a b >\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reflow(t, markdown.FlavorCommonMark, tt.src, 5))
		})
	}
}

func TestConvert_ReflowIsStable(t *testing.T) {
	t.Parallel()

	src := "# Notes\n\nSome long paragraph that keeps going well past the width of the page so " +
		"that it has to wrap.\n\n- first item with enough words to wrap around\n- second\n\n" +
		"> a quoted paragraph that also wraps at the page width\n"

	first := reflow(t, markdown.FlavorCommonMark, src, 24)
	second := reflow(t, markdown.FlavorCommonMark, first+"\n", 24)
	assert.Equal(t, first, second)

	for _, line := range strings.Split(first, "\n") {
		assert.LessOrEqual(t, len(line), 24, line)
	}
}

func TestConvert_CarriageReturnInVerbatimBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"fenced code", "```\na\rb\n```", "```\na\nb\n```"},
		{"html block", "<div>\na\rb\n</div>", "<div>\na\nb\n</div>"},
		{"indented code", "    a\rb", "```\na\nb\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			require.NotPanics(t, func() { got = reflow(t, markdown.FlavorCommonMark, tt.src, 80) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Flavor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, markdown.FlavorGFM, markdown.New("gfm").Flavor())
	assert.Equal(t, markdown.FlavorCommonMark, markdown.New("asciidoc").Flavor())
}

func TestConvert_Default(t *testing.T) {
	t.Parallel()

	d, err := markdown.Convert([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "a b", render.Render(d, 80))
}
