// Package doc defines the width-independent document algebra.
//
// A Doc is an immutable tree describing text plus the places where it may
// break across lines. Trees are built bottom-up with the constructors and
// combinators in this package, may share subtrees freely, and are resolved
// into concrete text for a page width by the layout and render packages.
//
//	call := doc.Cat("println(", doc.Align(doc.Spread("lol", "very long thing", "toto")), ")")
//	fmt.Println(render.Render(call, 80))
package doc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLineBreak is wrapped by the error raised when text contains a line break.
var ErrLineBreak = errors.New("text contains a line break")

// TextError reports an attempt to build a text node from a string that
// contains a line break.
type TextError struct {
	Text string
}

// Error implements error.
func (e *TextError) Error() string {
	return fmt.Sprintf("doc: invalid text %q: %v", e.Text, ErrLineBreak)
}

// Unwrap returns ErrLineBreak.
func (e *TextError) Unwrap() error {
	return ErrLineBreak
}

// Doc is a node in a document tree. The zero value is not useful; build
// documents with the package constructors. A nil *Doc is treated as Empty
// by every function and method in this package.
type Doc struct {
	kind Kind

	// text is the literal of a text node or the flatten substitute of a break.
	text string

	// left is the left operand of a concat, the body of a nest, or the
	// flat form of an alt. right is the right operand of a concat or the
	// original form of an alt.
	left  *Doc
	right *Doc

	// indent is the fixed increment of a nest; align marks a nest that
	// aligns to the current column instead.
	indent int
	align  bool
}

// Shared leaves. Documents are immutable, so these are reused everywhere.
//
//nolint:gochecknoglobals // Immutable singleton nodes.
var (
	emptyDoc     = &Doc{kind: KindEmpty}
	forceDoc     = &Doc{kind: KindForce}
	spaceDoc     = &Doc{kind: KindText, text: " "}
	softLineDoc  = &Doc{kind: KindBreak, text: " "}
	softBreakDoc = &Doc{kind: KindBreak}
	hardLineDoc  = &Doc{kind: KindConcat, left: forceDoc, right: softBreakDoc}
)

// Empty returns the document that renders nothing.
func Empty() *Doc {
	return emptyDoc
}

// Text returns a literal text fragment. It panics with a *TextError when s
// contains a line break; use NewText to get the error instead.
func Text(s string) *Doc {
	d, err := NewText(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewText returns a literal text fragment, or a *TextError when s contains
// a line break.
func NewText(s string) (*Doc, error) {
	if strings.ContainsAny(s, "\n\r") {
		return nil, &TextError{Text: s}
	}
	if s == " " {
		return spaceDoc, nil
	}
	return &Doc{kind: KindText, text: s}, nil
}

// Space returns a single space.
func Space() *Doc {
	return spaceDoc
}

// SoftLine returns a break that flattens to a space.
func SoftLine() *Doc {
	return softLineDoc
}

// SoftBreak returns a break that flattens to nothing.
func SoftBreak() *Doc {
	return softBreakDoc
}

// HardLine returns a break that can never be flattened.
func HardLine() *Doc {
	return hardLineDoc
}

// Force returns the forced-break marker on its own. Any document containing
// it cannot be flattened.
func Force() *Doc {
	return forceDoc
}

// Kind returns the kind of the node.
func (d *Doc) Kind() Kind {
	return orEmpty(d).kind
}

// Text returns the literal of a text node or the flatten substitute of a
// break. It is empty for every other kind.
func (d *Doc) Text() string {
	return orEmpty(d).text
}

// Left returns the left operand of a concat or the flat form of an alt.
func (d *Doc) Left() *Doc {
	d = orEmpty(d)
	if d.kind == KindConcat || d.kind == KindAlt {
		return d.left
	}
	return nil
}

// Right returns the right operand of a concat or the original form of an alt.
func (d *Doc) Right() *Doc {
	d = orEmpty(d)
	if d.kind == KindConcat || d.kind == KindAlt {
		return d.right
	}
	return nil
}

// Body returns the body of a nest.
func (d *Doc) Body() *Doc {
	d = orEmpty(d)
	if d.kind == KindNest {
		return d.left
	}
	return nil
}

// Indent returns the fixed increment of a nest and whether it aligns to the
// current column instead.
func (d *Doc) Indent() (increment int, align bool) {
	d = orEmpty(d)
	return d.indent, d.align
}

// String returns the document rendered as a single line when it can be
// flattened, otherwise a description of its kind.
func (d *Doc) String() string {
	flat, ok := Flatten(d)
	if !ok {
		return "<" + d.Kind().String() + " with forced break>"
	}
	var b strings.Builder
	_ = Walk(flat, func(n *Doc) error {
		if n.kind == KindText {
			b.WriteString(n.text)
		}
		return nil
	})
	return b.String()
}

func orEmpty(d *Doc) *Doc {
	if d == nil {
		return emptyDoc
	}
	return d
}

func concat(left, right *Doc) *Doc {
	left, right = orEmpty(left), orEmpty(right)
	switch {
	case left.kind == KindEmpty:
		return right
	case right.kind == KindEmpty:
		return left
	}
	return &Doc{kind: KindConcat, left: left, right: right}
}
