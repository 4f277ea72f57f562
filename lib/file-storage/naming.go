package filestorage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DocumentKind is the per-kind filename label.
type DocumentKind string

const (
	KindResume      DocumentKind = "Resume"
	KindCoverLetter DocumentKind = "Cover_Letter"
)

// Format selects the artifact extension and MIME type.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPdf  Format = "pdf"
)

func (f Format) ContentType() string {
	switch f {
	case FormatDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPdf:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	uniqueToken     = regexp.MustCompile(`_[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(\.[A-Za-z0-9]+)$`)
)

// SanitizeSubjectName reduces a subject's full name to the filename-safe
// display form: characters outside [A-Za-z0-9\s] are dropped and runs of
// whitespace become single underscores.
func SanitizeSubjectName(name string) string {
	cleaned := disallowedChars.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, "_")
	if cleaned == "" {
		return "User"
	}
	return cleaned
}

// BuildFileName derives the storage key for one artifact. The embedded
// random token makes concurrent renders for the same subject collision
// free; the display name is recoverable via StripUniqueToken.
func BuildFileName(subjectFullName string, kind DocumentKind, format Format) string {
	return fmt.Sprintf("%s_%s_%s.%s", SanitizeSubjectName(subjectFullName), kind, uuid.NewString(), format)
}

// StripUniqueToken removes the UUID suffix preceding the extension,
// recovering the human-facing download name from a storage key.
func StripUniqueToken(fileName string) string {
	return uniqueToken.ReplaceAllString(fileName, "$1")
}
