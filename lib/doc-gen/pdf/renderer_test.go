package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cvgen-backend/lib/doc-gen/compose"
	"cvgen-backend/lib/doc-gen/layout"
	cvapimodels "cvgen-backend/models/api/cv"
)

func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page\n")) + bytes.Count(data, []byte("/Type /Page\r"))
}

func TestRenderResume(t *testing.T) {
	identity := cvapimodels.Identity{FullName: "Jane O'Brien", Email: "jane@x.com"}
	content := cvapimodels.ResumeContent{
		Summary: "Experienced engineer.",
		Skills:  cvapimodels.Skills{Categorized: "Languages: Go, Rust"},
	}
	opts := cvapimodels.RenderOptions{Tags: []string{"Fluent in French"}}

	blocks := compose.ResumeBlocks(content, identity, opts)
	data, err := RenderResume(blocks)
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Equal(t, 1, pageCount(data))
}

func TestRenderResumeOverflowsToSecondPage(t *testing.T) {
	var achievements []string
	for i := 0; i < 80; i++ {
		achievements = append(achievements, "Delivered a meaningful improvement to the platform under sustained load")
	}
	content := cvapimodels.ResumeContent{
		Experience: []cvapimodels.Experience{
			{Position: "Engineer", Company: "Acme", Achievements: achievements},
		},
	}
	blocks := compose.ResumeBlocks(content, cvapimodels.Identity{FullName: "X"}, cvapimodels.RenderOptions{})
	data, err := RenderResume(blocks)
	require.Nil(t, err)
	require.GreaterOrEqual(t, pageCount(data), 2)
}

func TestRenderCoverLetter(t *testing.T) {
	content := cvapimodels.CoverLetterContent{
		Opening: "I am writing to apply.",
		Closing: "Thank you.",
	}
	blocks := compose.CoverLetterBlocks(content, cvapimodels.Identity{FullName: "Jane O'Brien", Email: "jane@x.com"})
	data, err := RenderCoverLetter(blocks)
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Equal(t, 1, pageCount(data))
}

func TestRenderEmptyBlocks(t *testing.T) {
	data, err := RenderResume(nil)
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Equal(t, 1, pageCount(data))
}

func TestRendererMeasurer(t *testing.T) {
	// The renderer doubles as the layout measurer; wider strings must
	// measure wider, and bold must not measure narrower than regular.
	r := newTestRenderer(t)

	f := layout.Font{Family: fontFamily, Size: 10}
	short := r.TextWidth(f, "hi")
	long := r.TextWidth(f, "hello there")
	require.Greater(t, long, short)

	bold := layout.Font{Family: fontFamily, Style: "B", Size: 10}
	require.GreaterOrEqual(t, r.TextWidth(bold, "hello"), r.TextWidth(f, "hello"))
}

func TestWrappedParagraphRespectsMaxWidth(t *testing.T) {
	r := newTestRenderer(t)
	f := layout.Font{Family: fontFamily, Size: r.geo.bodySize}

	text := strings.Repeat("wrapping the quick brown fox ", 20)
	lines := layout.WrapText(r, f, text, r.geo.maxWidth)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		require.LessOrEqual(t, r.TextWidth(f, line), r.geo.maxWidth)
	}
}

func newTestRenderer(t *testing.T) *renderer {
	t.Helper()
	doc := newDocument()
	doc.AddPage()
	return &renderer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
		cur: layout.NewCursor(pageHeight, resumeGeometry.margin, resumeGeometry.margin, resumeGeometry.lineHeight),
		geo: resumeGeometry,
	}
}
