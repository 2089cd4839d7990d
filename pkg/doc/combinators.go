package doc

import (
	"fmt"
	"strings"
)

// DefaultIndent is the nesting increment used by Parens, Brackets and Braces.
const DefaultIndent = 2

// Of converts a document part to a *Doc. Strings become Text, a *Doc is
// returned as is (nil becomes Empty), a fmt.Stringer becomes the Text of
// its String method and a []string the concatenation of its texts. Any
// other type is a programmer error and panics.
func Of(part any) *Doc {
	switch v := part.(type) {
	case nil:
		return emptyDoc
	case *Doc:
		return orEmpty(v)
	case string:
		return Text(v)
	case fmt.Stringer:
		return Text(v.String())
	case []string:
		parts := make([]*Doc, len(v))
		for i, text := range v {
			parts[i] = Text(text)
		}
		return Fold(parts, concat)
	default:
		panic(fmt.Sprintf("doc: cannot use %T as a document", part))
	}
}

func ofAll(parts []any) []*Doc {
	docs := make([]*Doc, len(parts))
	for i, part := range parts {
		docs[i] = Of(part)
	}
	return docs
}

// Cat concatenates the parts in order.
func Cat(parts ...any) *Doc {
	return Fold(ofAll(parts), concat)
}

// Cat returns d followed by other.
func (d *Doc) Cat(other any) *Doc {
	return concat(d, Of(other))
}

// Spaced returns d, a space, then other.
func (d *Doc) Spaced(other any) *Doc {
	return concat(d, concat(spaceDoc, Of(other)))
}

// Line returns d, a soft line, then other.
func (d *Doc) Line(other any) *Doc {
	return concat(d, concat(softLineDoc, Of(other)))
}

// Soft returns d, a soft break, then other.
func (d *Doc) Soft(other any) *Doc {
	return concat(d, concat(softBreakDoc, Of(other)))
}

// Hard returns d, a hard line, then other.
func (d *Doc) Hard(other any) *Doc {
	return concat(d, concat(hardLineDoc, Of(other)))
}

// Nest adds increment to the indentation of every break inside body.
func Nest(increment int, body any) *Doc {
	return &Doc{kind: KindNest, left: Of(body), indent: increment}
}

// Align sets the indentation of every break inside body to the column at
// which layout reaches this node.
func Align(body any) *Doc {
	return &Doc{kind: KindNest, left: Of(body), align: true}
}

// Fold reduces docs from the right: an empty slice gives Empty, a single
// element is returned unchanged, otherwise combine(head, Fold(tail)).
func Fold(docs []*Doc, combine func(x, y *Doc) *Doc) *Doc {
	if len(docs) == 0 {
		return emptyDoc
	}
	acc := orEmpty(docs[len(docs)-1])
	for i := len(docs) - 2; i >= 0; i-- {
		acc = combine(orEmpty(docs[i]), acc)
	}
	return acc
}

// Join places sep between consecutive parts.
func Join(sep any, parts ...any) *Doc {
	sepDoc := Of(sep)
	return Fold(ofAll(parts), func(x, y *Doc) *Doc {
		return concat(x, concat(sepDoc, y))
	})
}

// Stack joins the parts with hard lines, so the result is always multi-line.
func Stack(parts ...any) *Doc {
	return Fold(ofAll(parts), (*Doc).hard)
}

func (d *Doc) hard(other *Doc) *Doc {
	return concat(d, concat(hardLineDoc, other))
}

// TextBlock joins literal lines with hard lines and aligns the block to the
// column where it starts. Every line break in the input is kept, so the
// block renders identically at any width. A line containing "\n", "\r\n"
// or a bare "\r" is split with SplitLines first, so TextBlock never panics.
func TextBlock(lines ...string) *Doc {
	var split []any
	for _, line := range lines {
		for _, part := range SplitLines(line) {
			split = append(split, &Doc{kind: KindText, text: part})
		}
	}
	return Align(Stack(split...))
}

// SplitLines splits s at every line ending: "\r\n", "\n" and a bare "\r".
// The returned lines contain no line break characters.
func SplitLines(s string) []string {
	var lines []string
	for {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			return append(lines, s)
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
}

// Spread joins the parts with a comma and a soft line inside a group: one
// line if it fits, otherwise one part per line.
func Spread(parts ...any) *Doc {
	return SpreadWith(concat(Text(","), softLineDoc), parts...)
}

// SpreadWith is Spread with a custom separator.
func SpreadWith(sep any, parts ...any) *Doc {
	return Group(Join(sep, parts...))
}

// Binary renders "x op y", moving y to a new line indented by indent only
// when the whole expression does not fit.
func Binary(x, op, y any, indent int) *Doc {
	return Group(Of(x).Spaced(op).Cat(Nest(indent, concat(softLineDoc, Of(y)))))
}

// Bracket wraps body between left and right. When the group breaks, body
// moves to its own lines indented by indent and right returns to the outer
// indentation. A tight bracket flattens without padding ("(x)"), a loose one
// keeps a space on each side ("{ x }").
func Bracket(left, body, right any, indent int, tight bool) *Doc {
	brk := softLineDoc
	if tight {
		brk = softBreakDoc
	}
	return Group(Of(left).Cat(Nest(indent, concat(brk, Of(body)))).Cat(brk).Cat(right))
}

// Parens wraps body in tight parentheses.
func Parens(body any) *Doc {
	return Bracket("(", body, ")", DefaultIndent, true)
}

// Brackets wraps body in tight square brackets.
func Brackets(body any) *Doc {
	return Bracket("[", body, "]", DefaultIndent, true)
}

// Braces wraps body in loose curly braces.
func Braces(body any) *Doc {
	return Bracket("{", body, "}", DefaultIndent, false)
}

// Words splits s on white space into text documents.
func Words(s string) []*Doc {
	fields := strings.Fields(s)
	words := make([]*Doc, len(fields))
	for i, field := range fields {
		words[i] = &Doc{kind: KindText, text: field}
	}
	return words
}

// Fill packs parts onto each line greedily: every separator is its own
// group, so a line breaks only where the next part would overflow.
func Fill(parts ...any) *Doc {
	sep := Group(softLineDoc)
	return Fold(ofAll(parts), func(x, y *Doc) *Doc {
		return concat(x, concat(sep, y))
	})
}

// FillWords is Fill over the white-space separated words of s.
func FillWords(s string) *Doc {
	words := Words(s)
	parts := make([]any, len(words))
	for i, w := range words {
		parts[i] = w
	}
	return Fill(parts...)
}
