package filestorage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeSubjectName(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain name", "Jane Doe", "Jane_Doe"},
		{"apostrophe dropped", "Jane O'Brien", "Jane_OBrien"},
		{"punctuation dropped", "J. R. R. Tolkien!", "J_R_R_Tolkien"},
		{"multiple spaces collapse", "Jane   Doe", "Jane_Doe"},
		{"surrounding whitespace trimmed", "  Jane Doe  ", "Jane_Doe"},
		{"non-ascii letters dropped", "José Müller", "Jos_Mller"},
		{"empty falls back", "", "User"},
		{"only punctuation falls back", "!!!", "User"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SanitizeSubjectName(tc.in))
		})
	}
}

func TestBuildFileName(t *testing.T) {
	pattern := regexp.MustCompile(`^Jane_OBrien_Resume_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.docx$`)

	t.Run("matches the storage key shape", func(t *testing.T) {
		name := BuildFileName("Jane O'Brien", KindResume, FormatDocx)
		require.Regexp(t, pattern, name)
	})

	t.Run("concurrent renders never collide", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			name := BuildFileName("Jane O'Brien", KindResume, FormatPdf)
			require.False(t, seen[name])
			seen[name] = true
		}
	})
}

func TestStripUniqueTokenRoundTrip(t *testing.T) {
	subjects := []string{
		"Jane O'Brien",
		"J. R. R. Tolkien",
		"  spaced   out  ",
		"José Müller",
		"",
	}
	for _, subject := range subjects {
		for _, kind := range []DocumentKind{KindResume, KindCoverLetter} {
			for _, format := range []Format{FormatDocx, FormatPdf} {
				name := BuildFileName(subject, kind, format)
				display := StripUniqueToken(name)
				require.Equal(t,
					SanitizeSubjectName(subject)+"_"+string(kind)+"."+string(format),
					display)
			}
		}
	}
}

func TestStripUniqueTokenLeavesOtherNamesAlone(t *testing.T) {
	require.Equal(t, "report.pdf", StripUniqueToken("report.pdf"))
	require.Equal(t, "Jane_Resume.docx", StripUniqueToken("Jane_Resume.docx"))
}

func TestFormatContentType(t *testing.T) {
	require.Equal(t, "application/pdf", FormatPdf.ContentType())
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		FormatDocx.ContentType())
}
