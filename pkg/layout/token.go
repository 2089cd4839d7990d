package layout

// TokenKind classifies a token of the resolved layout.
type TokenKind uint8

// Token kinds.
const (
	TokenEnd TokenKind = iota
	TokenText
	TokenBreak
)

// String returns the lower-case name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEnd:
		return "end"
	case TokenText:
		return "text"
	case TokenBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Token is one element of a resolved layout. Tokens form a singly linked
// stream ending with a TokenEnd. The successor of a token is computed on
// first access and then remembered, so a stream may be inspected ahead
// (as Fits does) without repeating work. A stream is not safe for
// concurrent use.
type Token struct {
	// Kind identifies what type of token this is.
	Kind TokenKind

	// Text is the literal of a TokenText.
	Text string

	// Width is the measured width of Text.
	Width int

	// Indent is the number of spaces following the line break of a TokenBreak.
	Indent int

	next  *Token
	force func() *Token
}

// Next returns the successor of t, or nil after a TokenEnd.
func (t *Token) Next() *Token {
	if t.force != nil {
		t.next = t.force()
		t.force = nil
	}
	return t.next
}

// Tokens returns the whole stream starting at t as a slice, excluding the
// final TokenEnd.
func Tokens(t *Token) []*Token {
	var tokens []*Token
	for ; t != nil && t.Kind != TokenEnd; t = t.Next() {
		tokens = append(tokens, t)
	}
	return tokens
}

func endToken() *Token {
	return &Token{Kind: TokenEnd}
}
