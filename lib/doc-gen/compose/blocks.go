package compose

import "strings"

// Block is one renderer-agnostic unit of document content. Both the flow
// and the fixed-page renderer consume the same block sequence; only the
// emission step differs between them.
type Block interface {
	block()
}

// HeadingBlock is a document title (level 1) or a section heading (level 2).
type HeadingBlock struct {
	Text     string
	Level    int
	Centered bool
}

// KeyValueLine is a single identity line (contact or links); Link lines
// render in the hyperlink style.
type KeyValueLine struct {
	Text     string
	Link     bool
	Centered bool
}

// Run is a styled fragment of a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Link   bool
	Muted  bool
}

// ParagraphBlock is one paragraph built from styled runs.
type ParagraphBlock struct {
	Runs []Run
}

// BulletListBlock renders one bullet line per item, in order.
type BulletListBlock struct {
	Items []string
}

func (HeadingBlock) block()    {}
func (KeyValueLine) block()    {}
func (ParagraphBlock) block()  {}
func (BulletListBlock) block() {}

// Text returns the paragraph's plain text with styling discarded.
func (p ParagraphBlock) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
