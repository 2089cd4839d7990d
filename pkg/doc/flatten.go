package doc

// Flatten returns the single-line equivalent of d. Breaks become their
// flatten substitute, nests are dropped and alternatives yield their flat
// form. The second result is false when d contains a forced break.
//
// The traversal uses an explicit stack, so arbitrarily deep trees are safe,
// and shared subtrees are flattened once.
func Flatten(d *Doc) (*Doc, bool) {
	d = orEmpty(d)

	// flat maps each finished node to its flattened form.
	flat := make(map[*Doc]*Doc)

	type frame struct {
		node     *Doc
		expanded bool
	}
	stack := []frame{{node: d}}

	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top].node

		if _, done := flat[node]; done {
			stack = stack[:top]
			continue
		}

		switch node.kind {
		case KindEmpty, KindText:
			flat[node] = node
		case KindForce:
			// Every ancestor combination fails too.
			return nil, false
		case KindBreak:
			if node.text == "" {
				flat[node] = emptyDoc
			} else {
				flat[node] = &Doc{kind: KindText, text: node.text}
			}
		case KindAlt:
			flat[node] = node.left
		case KindNest:
			if !stack[top].expanded {
				stack[top].expanded = true
				stack = append(stack, frame{node: node.left})
				continue
			}
			flat[node] = flat[node.left]
		case KindConcat:
			if !stack[top].expanded {
				stack[top].expanded = true
				stack = append(stack, frame{node: node.right}, frame{node: node.left})
				continue
			}
			left, right := flat[node.left], flat[node.right]
			if left == node.left && right == node.right {
				flat[node] = node
			} else {
				flat[node] = concat(left, right)
			}
		}
		stack = stack[:top]
	}

	return flat[d], true
}

// Group offers the flattened form of d as an alternative to d itself. When
// d contains a forced break it cannot collapse, and d is returned unchanged.
func Group(d *Doc) *Doc {
	d = orEmpty(d)
	flat, ok := Flatten(d)
	if !ok {
		return d
	}
	return &Doc{kind: KindAlt, left: flat, right: d}
}

// Flat reports whether d is already in flattened form, made only of text
// and concatenations.
func Flat(d *Doc) bool {
	flat, ok := Flatten(d)
	return ok && flat == orEmpty(d)
}
