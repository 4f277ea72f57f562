package docgen

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	filestorage "cvgen-backend/lib/file-storage"
	cvapimodels "cvgen-backend/models/api/cv"
)

type memoryStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string

	failOn filestorage.Format
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStorage) Upload(_ context.Context, fileName string, data []byte, contentType string) (cvapimodels.ArtifactRef, error) {
	if m.failOn != "" && strings.HasSuffix(fileName, "."+string(m.failOn)) {
		return cvapimodels.ArtifactRef{}, errors.New("storage unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[fileName] = data
	m.types[fileName] = contentType
	return cvapimodels.ArtifactRef{FileName: fileName, URL: "/uploads/" + fileName}, nil
}

var (
	resumePattern = regexp.MustCompile(`^Jane_OBrien_Resume_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(docx|pdf)$`)
	letterPattern = regexp.MustCompile(`^Jane_OBrien_Cover_Letter_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(docx|pdf)$`)
)

func testInputs() (cvapimodels.ResumeContent, cvapimodels.CoverLetterContent, cvapimodels.Identity, cvapimodels.RenderOptions) {
	resume := cvapimodels.ResumeContent{
		Summary: "Experienced engineer.",
		Skills:  cvapimodels.Skills{Categorized: "Languages: Go, Rust"},
	}
	letter := cvapimodels.CoverLetterContent{
		Opening: "I am writing to apply.",
		Closing: "Thank you.",
	}
	identity := cvapimodels.Identity{FullName: "Jane O'Brien", Email: "jane@x.com"}
	opts := cvapimodels.RenderOptions{Tags: []string{"Fluent in French"}}
	return resume, letter, identity, opts
}

func TestGenerateApplicationKit(t *testing.T) {
	resume, letter, identity, opts := testInputs()
	storage := newMemoryStorage()
	engine := &impl{storage: storage}

	kit, err := engine.GenerateApplicationKit(context.Background(), resume, letter, identity, opts)
	require.Nil(t, err)

	t.Run("four artifacts are stored", func(t *testing.T) {
		require.Len(t, storage.files, 4)
	})

	t.Run("filenames embed subject, kind and token", func(t *testing.T) {
		require.Regexp(t, resumePattern, kit.ResumeDocx.FileName)
		require.Regexp(t, resumePattern, kit.ResumePdf.FileName)
		require.Regexp(t, letterPattern, kit.CoverLetterDocx.FileName)
		require.Regexp(t, letterPattern, kit.CoverLetterPdf.FileName)
		require.True(t, strings.HasSuffix(kit.ResumeDocx.FileName, ".docx"))
		require.True(t, strings.HasSuffix(kit.ResumePdf.FileName, ".pdf"))
	})

	t.Run("content types match the formats", func(t *testing.T) {
		require.Equal(t,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			storage.types[kit.ResumeDocx.FileName])
		require.Equal(t, "application/pdf", storage.types[kit.ResumePdf.FileName])
	})

	t.Run("flow artifact renders the expected sections", func(t *testing.T) {
		doc := unzipDocumentXML(t, storage.files[kit.ResumeDocx.FileName])
		require.Contains(t, doc, "Jane O'Brien")
		require.Contains(t, doc, "jane@x.com")
		require.Contains(t, doc, "PROFESSIONAL SUMMARY")
		require.Contains(t, doc, "Experienced engineer.")
		require.Contains(t, doc, "Languages: ")
		require.Contains(t, doc, "OTHER")
		require.Contains(t, doc, "Fluent in French")
		require.NotContains(t, doc, "PROFESSIONAL EXPERIENCE")
	})

	t.Run("fixed-page artifact is a pdf", func(t *testing.T) {
		require.True(t, bytes.HasPrefix(storage.files[kit.ResumePdf.FileName], []byte("%PDF")))
	})
}

func TestGenerateApplicationKitFailsAsBatch(t *testing.T) {
	resume, letter, identity, opts := testInputs()
	storage := newMemoryStorage()
	storage.failOn = filestorage.FormatPdf
	engine := &impl{storage: storage}

	kit, err := engine.GenerateApplicationKit(context.Background(), resume, letter, identity, opts)
	require.NotNil(t, err)
	require.Equal(t, cvapimodels.ApplicationKit{}, kit)
	// Sibling artifacts may already sit in storage; they are orphaned,
	// not rolled back.
	for name := range storage.files {
		require.True(t, strings.HasSuffix(name, ".docx"))
	}
}

func TestGenerateResume(t *testing.T) {
	resume, _, identity, opts := testInputs()
	storage := newMemoryStorage()
	engine := &impl{storage: storage}

	docxRef, pdfRef, err := engine.GenerateResume(context.Background(), resume, identity, opts)
	require.Nil(t, err)
	require.Regexp(t, resumePattern, docxRef.FileName)
	require.Regexp(t, resumePattern, pdfRef.FileName)
	require.Len(t, storage.files, 2)
}

func TestGenerateCoverLetter(t *testing.T) {
	_, letter, identity, _ := testInputs()
	storage := newMemoryStorage()
	engine := &impl{storage: storage}

	docxRef, pdfRef, err := engine.GenerateCoverLetter(context.Background(), letter, identity)
	require.Nil(t, err)
	require.Regexp(t, letterPattern, docxRef.FileName)
	require.Regexp(t, letterPattern, pdfRef.FileName)

	doc := unzipDocumentXML(t, storage.files[docxRef.FileName])
	require.Contains(t, doc, "Dear Hiring Manager,")
	require.Contains(t, doc, "Sincerely,")
}

func unzipDocumentXML(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.Nil(t, err)
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		require.Nil(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.Nil(t, err)
		return string(content)
	}
	t.Fatal("word/document.xml missing")
	return ""
}
