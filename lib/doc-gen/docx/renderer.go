// Package docx emits the block sequence as a flow document. Pagination is
// left to the consuming word processor; each block maps to one styled
// paragraph in word/document.xml.
package docx

import (
	"strings"

	"cvgen-backend/lib/doc-gen/compose"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const (
	colorLink  = "0066cc"
	colorMuted = "666666"

	bulletIndent = "360"

	// US Letter in twips.
	pageWidthTwips  = "12240"
	pageHeightTwips = "15840"
)

// Half-point font sizes and twips margins per document kind.
type geometry struct {
	pageMargin  string
	nameSize    string
	contactSize string
	linksSize   string
	headingSize string
	bodySize    string
	detailSize  string // location, graduation, skills lines
	paraAfter   string
}

var resumeGeometry = geometry{
	pageMargin:  "720",
	nameSize:    "32",
	contactSize: "20",
	linksSize:   "18",
	headingSize: "24",
	bodySize:    "22",
	detailSize:  "20",
	paraAfter:   "100",
}

var letterGeometry = geometry{
	pageMargin:  "1080",
	nameSize:    "28",
	contactSize: "20",
	linksSize:   "18",
	headingSize: "24",
	bodySize:    "22",
	detailSize:  "20",
	paraAfter:   "200",
}

// RenderResume emits résumé blocks as DOCX bytes.
func RenderResume(blocks []compose.Block) ([]byte, error) {
	return render(blocks, resumeGeometry)
}

// RenderCoverLetter emits cover-letter blocks as DOCX bytes.
func RenderCoverLetter(blocks []compose.Block) ([]byte, error) {
	return render(blocks, letterGeometry)
}

func render(blocks []compose.Block, geo geometry) ([]byte, error) {
	w := documentWriter{geo: geo}
	w.open()
	for _, block := range blocks {
		w.emit(block)
	}
	w.close()
	return pack([]byte(w.b.String()))
}

type documentWriter struct {
	b   strings.Builder
	geo geometry
}

func (w *documentWriter) open() {
	w.b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	w.b.WriteString("\n")
	w.b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)
}

func (w *documentWriter) close() {
	w.b.WriteString(`<w:sectPr><w:pgSz w:w="` + pageWidthTwips + `" w:h="` + pageHeightTwips + `"/>`)
	m := w.geo.pageMargin
	w.b.WriteString(`<w:pgMar w:top="` + m + `" w:right="` + m + `" w:bottom="` + m + `" w:left="` + m + `"/>`)
	w.b.WriteString(`</w:sectPr></w:body></w:document>`)
}

func (w *documentWriter) emit(block compose.Block) {
	switch b := block.(type) {
	case compose.HeadingBlock:
		if b.Level <= 1 {
			w.paragraph(paraProps{centered: b.Centered, after: "100"},
				run{text: b.Text, bold: true, size: w.geo.nameSize})
			return
		}
		w.paragraph(paraProps{before: "200", after: "100"},
			run{text: b.Text, bold: true, size: w.geo.headingSize})
	case compose.KeyValueLine:
		r := run{text: b.Text, size: w.geo.contactSize}
		props := paraProps{centered: b.Centered, after: "100"}
		if b.Link {
			r.color = colorLink
			if b.Centered {
				// Identity links line, visually lighter than contact.
				r.size = w.geo.linksSize
				props.after = "200"
			}
		}
		w.paragraph(props, r)
	case compose.ParagraphBlock:
		runs := make([]run, 0, len(b.Runs))
		for _, src := range b.Runs {
			runs = append(runs, w.styledRun(src))
		}
		w.paragraph(paraProps{after: w.geo.paraAfter}, runs...)
	case compose.BulletListBlock:
		for _, item := range b.Items {
			w.paragraph(paraProps{indentLeft: bulletIndent},
				run{text: "• " + item, size: w.geo.bodySize})
		}
	}
}

func (w *documentWriter) styledRun(src compose.Run) run {
	r := run{
		text:   src.Text,
		bold:   src.Bold,
		italic: src.Italic,
		size:   w.geo.bodySize,
	}
	if src.Italic || src.Muted {
		r.size = w.geo.detailSize
	}
	switch {
	case src.Link:
		r.color = colorLink
	case src.Muted:
		r.color = colorMuted
	}
	return r
}

type paraProps struct {
	centered   bool
	before     string
	after      string
	indentLeft string
}

type run struct {
	text   string
	bold   bool
	italic bool
	color  string
	size   string
}

func (w *documentWriter) paragraph(props paraProps, runs ...run) {
	w.b.WriteString(`<w:p>`)

	hasProps := props.centered || props.before != "" || props.after != "" || props.indentLeft != ""
	if hasProps {
		w.b.WriteString(`<w:pPr>`)
		if props.centered {
			w.b.WriteString(`<w:jc w:val="center"/>`)
		}
		if props.before != "" || props.after != "" {
			w.b.WriteString(`<w:spacing`)
			if props.before != "" {
				w.b.WriteString(` w:before="` + props.before + `"`)
			}
			if props.after != "" {
				w.b.WriteString(` w:after="` + props.after + `"`)
			}
			w.b.WriteString(`/>`)
		}
		if props.indentLeft != "" {
			w.b.WriteString(`<w:ind w:left="` + props.indentLeft + `"/>`)
		}
		w.b.WriteString(`</w:pPr>`)
	}

	for _, r := range runs {
		w.b.WriteString(`<w:r><w:rPr>`)
		if r.bold {
			w.b.WriteString(`<w:b/>`)
		}
		if r.italic {
			w.b.WriteString(`<w:i/>`)
		}
		if r.color != "" {
			w.b.WriteString(`<w:color w:val="` + r.color + `"/>`)
		}
		if r.size != "" {
			w.b.WriteString(`<w:sz w:val="` + r.size + `"/><w:szCs w:val="` + r.size + `"/>`)
		}
		w.b.WriteString(`</w:rPr>`)
		w.b.WriteString(`<w:t xml:space="preserve">` + escapeXML(r.text) + `</w:t>`)
		w.b.WriteString(`</w:r>`)
	}

	w.b.WriteString(`</w:p>`)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
