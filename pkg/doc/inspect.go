package doc

import (
	"strconv"
)

// Inspect returns a document describing the structure of d, for debugging.
// Chains of concatenations are shown as a single cat(...) call:
//
//	cat(text("1"), text(" "), alt(cat(...), cat(...)))
//
// Rendering the result at a narrow width lays the tree out vertically.
func Inspect(d *Doc) *Doc {
	d = orEmpty(d)
	described := make(map[*Doc]*Doc)

	type frame struct {
		node     *Doc
		operands []*Doc
	}
	stack := []frame{{node: d}}

	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top].node

		if _, done := described[node]; done {
			stack = stack[:top]
			continue
		}

		if stack[top].operands == nil {
			operands := inspectOperands(node)
			stack[top].operands = operands
			pushed := false
			for i := len(operands) - 1; i >= 0; i-- {
				if _, done := described[operands[i]]; !done {
					stack = append(stack, frame{node: operands[i]})
					pushed = true
				}
			}
			if pushed {
				continue
			}
		}

		args := make([]any, len(stack[top].operands))
		for i, operand := range stack[top].operands {
			args[i] = described[operand]
		}
		described[node] = describe(node, args)
		stack = stack[:top]
	}

	return described[d]
}

// inspectOperands returns the nodes shown as arguments of node. It returns
// a non-nil empty slice for leaves.
func inspectOperands(node *Doc) []*Doc {
	switch node.kind {
	case KindConcat:
		operands := []*Doc{}
		pending := []*Doc{node}
		for len(pending) > 0 {
			n := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if n.kind == KindConcat {
				pending = append(pending, n.right, n.left)
				continue
			}
			operands = append(operands, n)
		}
		return operands
	case KindNest, KindAlt:
		return node.Children()
	default:
		return []*Doc{}
	}
}

func describe(node *Doc, args []any) *Doc {
	switch node.kind {
	case KindText:
		return call("text", Text(strconv.Quote(node.text)))
	case KindBreak:
		return call("break", Text(strconv.Quote(node.text)))
	case KindNest:
		if node.align {
			return call("align", args...)
		}
		return call("nest", append([]any{strconv.Itoa(node.indent)}, args...)...)
	case KindConcat:
		return call("cat", args...)
	case KindAlt:
		return call("alt", args...)
	default:
		return Text(node.kind.String())
	}
}

func call(name string, args ...any) *Doc {
	return Bracket(name+"(", Join(concat(Text(","), softLineDoc), args...), ")", DefaultIndent, true)
}
