// Package layout resolves a document into a token stream for a page width.
//
// The resolver walks a work list of (indentation, document) pairs while
// tracking the current column. At every alternative produced by doc.Group
// it tries the flat form first and keeps it when the text up to the next
// line break fits in the remaining width; only otherwise is the original
// form laid out. Both the stream and the fallback are lazy, so the broken
// layout of a group is never built when its flat form is accepted.
package layout

import (
	"github.com/yaklabco/prettydoc/pkg/doc"
)

// Options configures layout resolution.
type Options struct {
	// Measure returns the width of a text fragment. Defaults to RuneCount,
	// the length of the text in code points.
	Measure Measure

	// Stats, when non-nil, receives counters about the resolution.
	Stats *Stats
}

// Stats counts decisions taken by the resolver.
type Stats struct {
	// Alternatives is the number of alternatives the resolver reached.
	Alternatives int

	// Fallbacks is the number of alternatives resolved to their original,
	// breaking form because the flat form did not fit.
	Fallbacks int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Measure: RuneCount,
	}
}

// Resolve lays out d for the page width and returns the first token of the
// resulting stream.
func Resolve(width int, d *doc.Doc) *Token {
	return ResolveWith(width, d, DefaultOptions())
}

// ResolveWith is Resolve with explicit options.
func ResolveWith(width int, d *doc.Doc, opts Options) *Token {
	if opts.Measure == nil {
		opts.Measure = RuneCount
	}
	r := &resolver{width: width, opts: opts}
	return r.resolve(0, &work{doc: d})
}

// work is a persistent list of pending documents. Alternatives share the
// tail of the list between their two candidates.
type work struct {
	indent int
	doc    *doc.Doc
	rest   *work
}

type resolver struct {
	width int
	opts  Options
}

// resolve returns the next token for the pending list at column k.
func (r *resolver) resolve(k int, list *work) *Token {
	for list != nil {
		indent, node, rest := list.indent, list.doc, list.rest

		switch node.Kind() {
		case doc.KindEmpty, doc.KindForce:
			list = rest

		case doc.KindConcat:
			list = &work{indent: indent, doc: node.Left(), rest: &work{indent: indent, doc: node.Right(), rest: rest}}

		case doc.KindNest:
			increment, align := node.Indent()
			next := indent + increment
			if align {
				next = indent + (k - indent)
			}
			list = &work{indent: next, doc: node.Body(), rest: rest}

		case doc.KindText:
			text := node.Text()
			width := r.opts.Measure(text)
			return &Token{
				Kind:  TokenText,
				Text:  text,
				Width: width,
				force: func() *Token { return r.resolve(k+width, rest) },
			}

		case doc.KindBreak:
			return &Token{
				Kind:   TokenBreak,
				Indent: indent,
				force:  func() *Token { return r.resolve(indent, rest) },
			}

		case doc.KindAlt:
			if r.opts.Stats != nil {
				r.opts.Stats.Alternatives++
			}
			flat := r.resolve(k, &work{indent: indent, doc: node.Left(), rest: rest})
			if Fits(r.width-k, flat) {
				return flat
			}
			if r.opts.Stats != nil {
				r.opts.Stats.Fallbacks++
			}
			list = &work{indent: indent, doc: node.Right(), rest: rest}
		}
	}

	return endToken()
}
