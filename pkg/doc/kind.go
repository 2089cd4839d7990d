package doc

// Kind classifies the type of a document node.
type Kind uint8

// Document node kinds. The set is closed.
const (
	KindEmpty Kind = iota
	KindForce      // forced-break marker
	KindText
	KindBreak
	KindConcat
	KindNest
	KindAlt
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindForce:
		return "force"
	case KindText:
		return "text"
	case KindBreak:
		return "break"
	case KindConcat:
		return "concat"
	case KindNest:
		return "nest"
	case KindAlt:
		return "alt"
	default:
		return "unknown"
	}
}

// IsLeaf returns true if nodes of this kind have no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindEmpty, KindForce, KindText, KindBreak:
		return true
	default:
		return false
	}
}
