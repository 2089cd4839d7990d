package layout

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measure returns the number of columns occupied by a text fragment.
type Measure func(s string) int

// Names of the built-in measures.
const (
	MeasureDisplay = "display"
	MeasureRunes   = "runes"
	MeasureBytes   = "bytes"
)

// DisplayWidth measures terminal cell width: wide East Asian characters
// count as two columns and combining marks as zero.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneCount measures the number of Unicode code points.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteLen measures the number of bytes.
func ByteLen(s string) int {
	return len(s)
}

// ParseMeasure returns the built-in measure with the given name. An empty
// name selects RuneCount, the library default.
func ParseMeasure(name string) (Measure, error) {
	switch name {
	case MeasureDisplay:
		return DisplayWidth, nil
	case MeasureRunes, "":
		return RuneCount, nil
	case MeasureBytes:
		return ByteLen, nil
	default:
		return nil, fmt.Errorf("unknown measure %q; valid measures: display, runes, bytes", name)
	}
}
