package analysis

// Report describes how a rendered text uses its page width.
type Report struct {
	// Path is the file the text was rendered from, if any.
	Path string `json:"path,omitempty"`

	// Width is the page width the text was rendered for.
	Width int `json:"width"`

	// Lines is the number of lines in the text.
	Lines int `json:"lines"`

	// MaxWidth is the width of the widest line.
	MaxWidth int `json:"maxWidth"`

	// Overflows lists the lines wider than Width, in order.
	Overflows []Overflow `json:"overflows,omitempty"`

	// Document describes the document the text was rendered from.
	Document *DocumentStats `json:"document,omitempty"`
}

// Overflow is a line that does not fit the page width.
type Overflow struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Width is the measured width of the line.
	Width int `json:"width"`

	// Text is the content of the line.
	Text string `json:"text"`
}

// Fits returns true if no line exceeds the page width.
func (r *Report) Fits() bool {
	return len(r.Overflows) == 0
}

// DocumentStats summarizes a document tree and the work done to lay it out.
type DocumentStats struct {
	Nodes        int `json:"nodes"`
	UniqueNodes  int `json:"uniqueNodes"`
	Depth        int `json:"depth"`
	Alternatives int `json:"alternatives"`
	Fallbacks    int `json:"fallbacks"`
}

// Totals aggregates several reports.
type Totals struct {
	Files            int `json:"files"`
	FilesOverflowing int `json:"filesOverflowing"`
	Lines            int `json:"lines"`
	Overflows        int `json:"overflows"`
	MaxWidth         int `json:"maxWidth"`
}

// Fits returns true if no line of any report exceeds its page width.
func (t Totals) Fits() bool {
	return t.Overflows == 0
}
