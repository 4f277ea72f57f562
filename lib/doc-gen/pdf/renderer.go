// Package pdf emits the block sequence as a fixed-page vector document.
// Placement is computed manually: glyph metrics come from the embedded
// core fonts, wrapping and page breaks from the layout cursor.
package pdf

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"cvgen-backend/lib/doc-gen/compose"
	"cvgen-backend/lib/doc-gen/layout"
)

const (
	pageWidth  = 612.0 // US Letter, 72 units per inch
	pageHeight = 792.0
	fontFamily = "Helvetica"
)

type color struct{ r, g, b int }

var (
	colorBlack = color{0, 0, 0}
	colorLink  = color{0, 102, 204}
	colorMuted = color{102, 102, 102}
)

// geometry carries the per-kind layout constants.
type geometry struct {
	margin         float64
	lineHeight     float64
	maxWidth       float64
	bodySize       float64
	nameSize       float64
	contactSize    float64
	headingSize    float64
	sectionSpacing float64
	headingRoom    float64 // minimum space required below a heading
	bulletIndent   float64
	paragraphGap   float64
	contactGap     float64
}

var resumeGeometry = geometry{
	margin:         50,
	lineHeight:     14,
	maxWidth:       512,
	bodySize:       10,
	nameSize:       18,
	contactSize:    9,
	headingSize:    12,
	sectionSpacing: 20,
	headingRoom:    30,
	bulletIndent:   10,
}

var letterGeometry = geometry{
	margin:         72,
	lineHeight:     16,
	maxWidth:       468,
	bodySize:       11,
	nameSize:       14,
	contactSize:    10,
	headingSize:    12,
	sectionSpacing: 20,
	headingRoom:    30,
	bulletIndent:   10,
	paragraphGap:   10,
	contactGap:     20,
}

// RenderResume emits résumé blocks as PDF bytes.
func RenderResume(blocks []compose.Block) ([]byte, error) {
	return render(blocks, resumeGeometry)
}

// RenderCoverLetter emits cover-letter blocks as PDF bytes.
func RenderCoverLetter(blocks []compose.Block) ([]byte, error) {
	return render(blocks, letterGeometry)
}

func render(blocks []compose.Block, geo geometry) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("fixed-page render panic recover: %v", r)
		}
	}()

	doc := newDocument()
	doc.AddPage()

	cur := layout.NewCursor(pageHeight, geo.margin, geo.margin, geo.lineHeight)
	cur.OnPageBreak = func() { doc.AddPage() }

	r := renderer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
		cur: cur,
		geo: geo,
	}
	for _, block := range blocks {
		r.emit(block)
	}
	if doc.Error() != nil {
		return nil, doc.Error()
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf output failed")
	}
	return buf.Bytes(), nil
}

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	return doc
}

type renderer struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	cur *layout.Cursor
	geo geometry
}

// TextWidth implements layout.Measurer against the document's fonts.
func (r *renderer) TextWidth(f layout.Font, text string) float64 {
	r.doc.SetFont(f.Family, f.Style, f.Size)
	return r.doc.GetStringWidth(r.tr(text))
}

func (r *renderer) emit(block compose.Block) {
	switch b := block.(type) {
	case compose.HeadingBlock:
		if b.Level <= 1 {
			r.drawText(b.Text, layout.Font{Family: fontFamily, Style: "B", Size: r.geo.nameSize}, colorBlack, b.Centered, 0)
			r.cur.Space(5)
			return
		}
		r.cur.Space(r.geo.sectionSpacing)
		r.cur.EnsureRoom(r.geo.headingRoom)
		r.drawText(b.Text, layout.Font{Family: fontFamily, Style: "B", Size: r.geo.headingSize}, colorBlack, false, 0)
		r.cur.Space(5)
	case compose.KeyValueLine:
		c := colorBlack
		if b.Link {
			c = colorLink
		}
		r.drawText(b.Text, layout.Font{Family: fontFamily, Size: r.geo.contactSize}, c, b.Centered, 0)
		if !b.Link {
			r.cur.Space(r.geo.contactGap)
		}
	case compose.ParagraphBlock:
		r.drawRuns(b.Runs)
		r.cur.Space(r.geo.paragraphGap)
	case compose.BulletListBlock:
		for _, item := range b.Items {
			r.drawText("• "+item, layout.Font{Family: fontFamily, Size: r.geo.bodySize}, colorBlack, false, r.geo.bulletIndent)
		}
	}
}

// drawText wraps and places a uniformly styled string. Centered lines are
// offset from the page center by half their measured width.
func (r *renderer) drawText(text string, f layout.Font, c color, centered bool, indent float64) {
	for _, line := range layout.WrapText(r, f, text, r.geo.maxWidth-indent) {
		r.cur.EnsureRoom(0)
		x := r.geo.margin + indent
		if centered {
			x = pageWidth/2 - r.TextWidth(f, line)/2
		}
		r.doc.SetFont(f.Family, f.Style, f.Size)
		r.doc.SetTextColor(c.r, c.g, c.b)
		r.doc.Text(x, r.cur.Y, r.tr(line))
		r.cur.AdvanceLine()
	}
}

type styledWord struct {
	text string
	run  compose.Run
}

// drawRuns places a paragraph of styled runs, continuing a new run on the
// same line and wrapping at whitespace across style boundaries.
func (r *renderer) drawRuns(runs []compose.Run) {
	var words []styledWord
	for _, run := range runs {
		normalized := strings.ReplaceAll(run.Text, "\n", " ")
		for _, w := range strings.Fields(normalized) {
			words = append(words, styledWord{text: w, run: run})
		}
	}
	if len(words) == 0 {
		// Keep the vertical rhythm of fully empty lines.
		r.cur.EnsureRoom(0)
		r.cur.AdvanceLine()
		return
	}

	var line []styledWord
	width := 0.0
	flush := func() {
		if len(line) == 0 {
			return
		}
		r.drawLine(line)
		line = nil
		width = 0
	}
	for _, w := range words {
		f := r.runFont(w.run)
		wordWidth := r.TextWidth(f, w.text)
		spaceWidth := 0.0
		if len(line) > 0 {
			spaceWidth = r.TextWidth(f, " ")
		}
		if width+spaceWidth+wordWidth > r.geo.maxWidth && len(line) > 0 {
			flush()
			spaceWidth = 0
		}
		line = append(line, w)
		width += spaceWidth + wordWidth
	}
	flush()
}

// drawLine emits one assembled line, grouping adjacent words that share a
// style into single draw calls.
func (r *renderer) drawLine(line []styledWord) {
	r.cur.EnsureRoom(0)
	x := r.geo.margin
	for i := 0; i < len(line); {
		j := i
		for j < len(line) && line[j].run == line[i].run {
			j++
		}
		parts := make([]string, 0, j-i)
		for k := i; k < j; k++ {
			parts = append(parts, line[k].text)
		}
		segment := strings.Join(parts, " ")

		f := r.runFont(line[i].run)
		c := runColor(line[i].run)
		r.doc.SetFont(f.Family, f.Style, f.Size)
		r.doc.SetTextColor(c.r, c.g, c.b)
		r.doc.Text(x, r.cur.Y, r.tr(segment))

		x += r.TextWidth(f, segment)
		if j < len(line) {
			x += r.TextWidth(f, " ")
		}
		i = j
	}
	r.cur.AdvanceLine()
}

func (r *renderer) runFont(run compose.Run) layout.Font {
	style := ""
	if run.Bold {
		style += "B"
	}
	if run.Italic {
		style += "I"
	}
	return layout.Font{Family: fontFamily, Style: style, Size: r.geo.bodySize}
}

func runColor(run compose.Run) color {
	switch {
	case run.Link:
		return colorLink
	case run.Muted:
		return colorMuted
	default:
		return colorBlack
	}
}
