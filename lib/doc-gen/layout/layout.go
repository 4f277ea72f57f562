package layout

import "strings"

// Font selects a face and size for measurement, in the measurer's own
// units.
type Font struct {
	Family string
	Style  string // "", "B", "I", "BI"
	Size   float64
}

// Measurer reports the rendered width of a string for a given font.
type Measurer interface {
	TextWidth(f Font, text string) float64
}

// WrapText splits text into lines whose measured width does not exceed
// maxWidth, breaking only at whitespace. Embedded newlines are normalized
// to spaces first; AI-authored line breaks are not preserved. A single
// word wider than maxWidth is emitted alone on its own line, unsplit, so
// wrapping always terminates.
func WrapText(m Measurer, f Font, text string, maxWidth float64) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		test := line + word + " "
		if m.TextWidth(f, test) > maxWidth && line != "" {
			lines = append(lines, strings.TrimSpace(line))
			line = word + " "
			continue
		}
		line = test
	}
	return append(lines, strings.TrimSpace(line))
}

// Cursor is the pagination state machine threaded through fixed-page
// emission. Y grows downward from the top of the page; a page break
// resets it to the top margin and fires OnPageBreak so the renderer can
// open a fresh page.
type Cursor struct {
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
	LineHeight   float64

	Y           float64
	Page        int
	OnPageBreak func()
}

func NewCursor(pageHeight, topMargin, bottomMargin, lineHeight float64) *Cursor {
	return &Cursor{
		PageHeight:   pageHeight,
		TopMargin:    topMargin,
		BottomMargin: bottomMargin,
		LineHeight:   lineHeight,
		Y:            topMargin,
		Page:         1,
	}
}

// EnsureRoom starts a new page when fewer than need units remain above
// the bottom margin at the current position.
func (c *Cursor) EnsureRoom(need float64) {
	if c.Y+need <= c.PageHeight-c.BottomMargin {
		return
	}
	c.Page++
	c.Y = c.TopMargin
	if c.OnPageBreak != nil {
		c.OnPageBreak()
	}
}

// AdvanceLine moves the cursor past one emitted line.
func (c *Cursor) AdvanceLine() {
	c.Y += c.LineHeight
}

// Space inserts fixed vertical spacing, e.g. before a section heading.
func (c *Cursor) Space(h float64) {
	c.Y += h
}
