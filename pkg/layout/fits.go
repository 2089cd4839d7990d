package layout

// Fits reports whether the stream starting at t stays within remaining
// columns up to its next line break. Reaching a break or the end of the
// stream counts as fitting; only the text before it can overflow.
func Fits(remaining int, t *Token) bool {
	for ; t != nil; t = t.Next() {
		if remaining < 0 {
			return false
		}
		if t.Kind != TokenText {
			return true
		}
		remaining -= t.Width
	}
	return remaining >= 0
}
