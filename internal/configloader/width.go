package configloader

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/prettydoc/pkg/config"
)

// WidthSource names where a resolved page width came from.
type WidthSource string

const (
	WidthFromConfig   WidthSource = "config"
	WidthFromDocument WidthSource = "document"
	WidthFromTerminal WidthSource = "terminal"
	WidthFromDefault  WidthSource = "default"
)

// ResolveWidth picks the page width for one document. A configured width
// (flag, environment or config file, already merged) wins, then the
// document's own hint, then the terminal width, then config.DefaultWidth.
// Non-positive values mean "not set" at every level.
func ResolveWidth(configured, hint, terminal int) (int, WidthSource) {
	switch {
	case configured > 0:
		return configured, WidthFromConfig
	case hint > 0:
		return hint, WidthFromDocument
	case terminal > 0:
		return terminal, WidthFromTerminal
	default:
		return config.DefaultWidth, WidthFromDefault
	}
}

// TerminalWidth returns the column count of the terminal behind fd, or 0
// when fd is not a terminal.
func TerminalWidth(fd uintptr) int {
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0
	}
	return width
}
