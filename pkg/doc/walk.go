package doc

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return SkipChildren to skip the children of the current node, or any other
// non-nil error to stop the walk.
type WalkFunc func(d *Doc) error

// SkipChildren is returned by a WalkFunc to skip the children of a node.
//
//nolint:errname // Sentinel used for control flow, mirrors fs.SkipDir.
var SkipChildren = errors.New("skip children")

// Children returns the direct children of d in document order. An alt
// yields its flat form before its original form.
func (d *Doc) Children() []*Doc {
	d = orEmpty(d)
	switch d.kind {
	case KindConcat, KindAlt:
		return []*Doc{d.left, d.right}
	case KindNest:
		return []*Doc{d.left}
	default:
		return nil
	}
}

// Walk performs a pre-order traversal of the tree starting at root. A
// subtree shared by several parents is visited once per occurrence.
// The traversal uses an explicit stack.
func Walk(root *Doc, walkFunc WalkFunc) error {
	stack := []*Doc{orEmpty(root)}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := walkFunc(node); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		children := node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return nil
}

// Stats summarizes the shape of a document tree.
type Stats struct {
	// Nodes is the number of node occurrences.
	Nodes int

	// Unique is the number of distinct nodes.
	Unique int

	// Depth is the length of the longest root-to-leaf path.
	Depth int

	// ByKind counts node occurrences per kind.
	ByKind map[Kind]int
}

// Count walks d and returns its statistics.
func Count(d *Doc) Stats {
	stats := Stats{ByKind: make(map[Kind]int)}
	seen := make(map[*Doc]bool)

	type frame struct {
		node  *Doc
		depth int
	}
	stack := []frame{{node: orEmpty(d), depth: 1}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stats.Nodes++
		stats.ByKind[top.node.kind]++
		if !seen[top.node] {
			seen[top.node] = true
			stats.Unique++
		}
		stats.Depth = max(stats.Depth, top.depth)

		for _, child := range top.node.Children() {
			stack = append(stack, frame{node: child, depth: top.depth + 1})
		}
	}

	return stats
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root *Doc, predicate func(d *Doc) bool) []*Doc {
	var result []*Doc

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *Doc) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// HasForcedBreak reports whether d contains a forced-break marker anywhere,
// including inside alternatives.
func HasForcedBreak(d *Doc) bool {
	return Walk(d, func(node *Doc) error {
		if node.kind == KindForce {
			return errStopWalk
		}
		return nil
	}) != nil
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = errors.New("stop walk")
