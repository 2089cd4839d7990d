package docfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/prettydoc/pkg/doc"
)

// ErrInvalidNode is wrapped by every error about a malformed document node.
var ErrInvalidNode = errors.New("invalid document node")

// NodeError reports a malformed node together with its path in the file,
// such as "document.cat[1].nest.indent".
type NodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap exposes both ErrInvalidNode and the underlying cause to errors.Is.
func (e *NodeError) Unwrap() []error {
	return []error{ErrInvalidNode, e.Err}
}

// keywords are the leaf nodes that take no argument.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywords = map[string]func() *doc.Doc{
	"empty":     doc.Empty,
	"space":     doc.Space,
	"softline":  doc.SoftLine,
	"softbreak": doc.SoftBreak,
	"hardline":  doc.HardLine,
}

// builder turns the decoded value at a path into a document.
type builder func(b *nodeBuilder, path string, value any) (*doc.Doc, error)

// builders maps node keys to their builders.
//
//nolint:gochecknoglobals // Read-only lookup table.
var builders map[string]builder

func init() {
	builders = map[string]builder{
		"text":    (*nodeBuilder).text,
		"break":   (*nodeBuilder).keyword,
		"cat":     listOf(func(parts []*doc.Doc) *doc.Doc { return doc.Cat(anys(parts)...) }),
		"spaced":  listOf(func(parts []*doc.Doc) *doc.Doc { return doc.Fold(parts, spaced) }),
		"lined":   listOf(func(parts []*doc.Doc) *doc.Doc { return doc.Fold(parts, lined) }),
		"stack":   listOf(func(parts []*doc.Doc) *doc.Doc { return doc.Stack(anys(parts)...) }),
		"fill":    listOf(func(parts []*doc.Doc) *doc.Doc { return doc.Fill(anys(parts)...) }),
		"words":   (*nodeBuilder).words,
		"lines":   (*nodeBuilder).lines,
		"group":   unary(doc.Group),
		"align":   unary(func(d *doc.Doc) *doc.Doc { return doc.Align(d) }),
		"nest":    (*nodeBuilder).nest,
		"spread":  (*nodeBuilder).spread,
		"join":    (*nodeBuilder).join,
		"binary":  (*nodeBuilder).binary,
		"bracket": (*nodeBuilder).bracket,
	}
	for name := range keywords {
		builders[name] = keywordNode(name)
	}
}

// Keys returns the node keys a document file may use, sorted.
func Keys() []string {
	keys := make([]string, 0, len(builders))
	for key := range builders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Build converts a decoded node (strings, maps, lists and numbers as
// produced by the YAML, JSON and TOML decoders) into a document.
func Build(node any) (*doc.Doc, error) {
	b := &nodeBuilder{}
	return b.node(rootPath, node)
}

type nodeBuilder struct{}

func (b *nodeBuilder) fail(path, format string, args ...any) error {
	return &NodeError{Path: path, Err: fmt.Errorf(format, args...)}
}

func (b *nodeBuilder) node(path string, value any) (*doc.Doc, error) {
	switch v := value.(type) {
	case nil:
		return doc.Empty(), nil
	case string:
		return b.textValue(path, v)
	case map[string]any:
		if len(v) != 1 {
			return nil, b.fail(path, "node must have exactly one key, got %d (%s)", len(v), strings.Join(sortedKeys(v), ", "))
		}
		for key, arg := range v {
			build, ok := builders[key]
			if !ok {
				return nil, b.fail(path, "unknown node %q", key)
			}
			return build(b, path+"."+key, arg)
		}
	}
	return nil, b.fail(path, "expected a string or a single-key mapping, got %s", describe(value))
}

func (b *nodeBuilder) textValue(path, s string) (*doc.Doc, error) {
	d, err := doc.NewText(s)
	if err != nil {
		return nil, &NodeError{Path: path, Err: err}
	}
	return d, nil
}

func (b *nodeBuilder) text(path string, value any) (*doc.Doc, error) {
	s, err := b.str(path, value)
	if err != nil {
		return nil, err
	}
	return b.textValue(path, s)
}

func (b *nodeBuilder) keyword(path string, value any) (*doc.Doc, error) {
	name, err := b.str(path, value)
	if err != nil {
		return nil, err
	}
	leaf, ok := keywords[name]
	if !ok {
		return nil, b.fail(path, "unknown break %q (valid: empty, space, softline, softbreak, hardline)", name)
	}
	return leaf(), nil
}

// keywordNode builds {softline: ~} style nodes. The value must be empty or true.
func keywordNode(name string) builder {
	return func(b *nodeBuilder, path string, value any) (*doc.Doc, error) {
		switch v := value.(type) {
		case nil:
		case bool:
			if !v {
				return nil, b.fail(path, "%s takes no value", name)
			}
		case map[string]any:
			if len(v) > 0 {
				return nil, b.fail(path, "%s takes no value", name)
			}
		default:
			return nil, b.fail(path, "%s takes no value, got %s", name, describe(value))
		}
		return keywords[name](), nil
	}
}

func (b *nodeBuilder) words(path string, value any) (*doc.Doc, error) {
	s, err := b.str(path, value)
	if err != nil {
		return nil, err
	}
	return doc.FillWords(s), nil
}

func (b *nodeBuilder) lines(path string, value any) (*doc.Doc, error) {
	if s, ok := value.(string); ok {
		return doc.TextBlock(s), nil
	}

	items, err := b.list(path, value)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i], err = b.str(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
	}
	return doc.TextBlock(lines...), nil
}

func (b *nodeBuilder) nest(path string, value any) (*doc.Doc, error) {
	fields, err := b.fields(path, value, "indent", "body")
	if err != nil {
		return nil, err
	}
	indent, err := b.intField(path, fields, "indent", doc.DefaultIndent)
	if err != nil {
		return nil, err
	}
	body, err := b.node(path+".body", fields["body"])
	if err != nil {
		return nil, err
	}
	return doc.Nest(indent, body), nil
}

func (b *nodeBuilder) spread(path string, value any) (*doc.Doc, error) {
	if _, ok := value.(map[string]any); !ok {
		parts, err := b.nodes(path, value)
		if err != nil {
			return nil, err
		}
		return doc.Spread(anys(parts)...), nil
	}

	fields, err := b.fields(path, value, "items", "sep")
	if err != nil {
		return nil, err
	}
	parts, err := b.nodes(path+".items", fields["items"])
	if err != nil {
		return nil, err
	}
	if _, ok := fields["sep"]; !ok {
		return doc.Spread(anys(parts)...), nil
	}
	sep, err := b.node(path+".sep", fields["sep"])
	if err != nil {
		return nil, err
	}
	return doc.SpreadWith(sep, anys(parts)...), nil
}

func (b *nodeBuilder) join(path string, value any) (*doc.Doc, error) {
	fields, err := b.fields(path, value, "sep", "items")
	if err != nil {
		return nil, err
	}
	sep, err := b.node(path+".sep", fields["sep"])
	if err != nil {
		return nil, err
	}
	parts, err := b.nodes(path+".items", fields["items"])
	if err != nil {
		return nil, err
	}
	return doc.Join(sep, anys(parts)...), nil
}

func (b *nodeBuilder) binary(path string, value any) (*doc.Doc, error) {
	fields, err := b.fields(path, value, "left", "op", "right", "indent")
	if err != nil {
		return nil, err
	}
	docs, err := b.children(path, fields, "left", "op", "right")
	if err != nil {
		return nil, err
	}
	indent, err := b.intField(path, fields, "indent", doc.DefaultIndent)
	if err != nil {
		return nil, err
	}
	return doc.Binary(docs[0], docs[1], docs[2], indent), nil
}

func (b *nodeBuilder) bracket(path string, value any) (*doc.Doc, error) {
	fields, err := b.fields(path, value, "left", "body", "right", "indent", "tight")
	if err != nil {
		return nil, err
	}
	docs, err := b.children(path, fields, "left", "body", "right")
	if err != nil {
		return nil, err
	}
	indent, err := b.intField(path, fields, "indent", doc.DefaultIndent)
	if err != nil {
		return nil, err
	}
	tight := false
	if raw, ok := fields["tight"]; ok {
		tight, ok = raw.(bool)
		if !ok {
			return nil, b.fail(path+".tight", "expected a boolean, got %s", describe(raw))
		}
	}
	return doc.Bracket(docs[0], docs[1], docs[2], indent, tight), nil
}

// listOf builds a node whose value is a list of nodes.
func listOf(combine func([]*doc.Doc) *doc.Doc) builder {
	return func(b *nodeBuilder, path string, value any) (*doc.Doc, error) {
		parts, err := b.nodes(path, value)
		if err != nil {
			return nil, err
		}
		return combine(parts), nil
	}
}

// unary builds a node whose value is a single node.
func unary(wrap func(*doc.Doc) *doc.Doc) builder {
	return func(b *nodeBuilder, path string, value any) (*doc.Doc, error) {
		d, err := b.node(path, value)
		if err != nil {
			return nil, err
		}
		return wrap(d), nil
	}
}

func (b *nodeBuilder) nodes(path string, value any) ([]*doc.Doc, error) {
	items, err := b.list(path, value)
	if err != nil {
		return nil, err
	}
	parts := make([]*doc.Doc, len(items))
	for i, item := range items {
		parts[i], err = b.node(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
	}
	return parts, nil
}

func (b *nodeBuilder) children(path string, fields map[string]any, names ...string) ([]*doc.Doc, error) {
	docs := make([]*doc.Doc, len(names))
	for i, name := range names {
		d, err := b.node(path+"."+name, fields[name])
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return docs, nil
}

// list accepts []any and the []map[string]any the TOML decoder produces for
// arrays of tables.
func (b *nodeBuilder) list(path string, value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return items, nil
	case nil:
		return nil, nil
	default:
		return nil, b.fail(path, "expected a list, got %s", describe(value))
	}
}

// fields checks that value is a mapping using only the allowed keys.
func (b *nodeBuilder) fields(path string, value any, allowed ...string) (map[string]any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, b.fail(path, "expected a mapping with keys %s, got %s", strings.Join(allowed, ", "), describe(value))
	}
	for _, key := range sortedKeys(m) {
		known := false
		for _, name := range allowed {
			known = known || key == name
		}
		if !known {
			return nil, b.fail(path+"."+key, "unknown field (valid: %s)", strings.Join(allowed, ", "))
		}
	}
	return m, nil
}

func (b *nodeBuilder) str(path string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", b.fail(path, "expected a string, got %s", describe(value))
	}
	return s, nil
}

func (b *nodeBuilder) intField(path string, fields map[string]any, name string, fallback int) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return fallback, nil
	}

	path += "." + name
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return 0, b.fail(path, "integer %d out of range", v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, b.fail(path, "expected an integer, got %v", v)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, b.fail(path, "expected an integer, got %s", v)
		}
		return n, nil
	default:
		return 0, b.fail(path, "expected an integer, got %s", describe(raw))
	}
}

func spaced(x, y *doc.Doc) *doc.Doc { return x.Spaced(y) }

func lined(x, y *doc.Doc) *doc.Doc { return x.Line(y) }

func anys(docs []*doc.Doc) []any {
	parts := make([]any, len(docs))
	for i, d := range docs {
		parts[i] = d
	}
	return parts
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "nothing"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64, float64, json.Number:
		return "a number"
	case []any, []map[string]any:
		return "a list"
	case map[string]any:
		return "a mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}
