// Package docgen is the document generation facade: it composes the
// shared block sequence once per content object, renders the flow and
// fixed-page artifacts, and hands the bytes to file storage.
package docgen

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cvgen-backend/lib/doc-gen/compose"
	"cvgen-backend/lib/doc-gen/docx"
	"cvgen-backend/lib/doc-gen/pdf"
	filestorage "cvgen-backend/lib/file-storage"
	cvapimodels "cvgen-backend/models/api/cv"
)

type Provider interface {
	GenerateResume(ctx context.Context, content cvapimodels.ResumeContent, identity cvapimodels.Identity, opts cvapimodels.RenderOptions) (docxRef, pdfRef cvapimodels.ArtifactRef, err error)
	GenerateCoverLetter(ctx context.Context, content cvapimodels.CoverLetterContent, identity cvapimodels.Identity) (docxRef, pdfRef cvapimodels.ArtifactRef, err error)
	GenerateApplicationKit(ctx context.Context, resume cvapimodels.ResumeContent, letter cvapimodels.CoverLetterContent, identity cvapimodels.Identity, opts cvapimodels.RenderOptions) (cvapimodels.ApplicationKit, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{storage: filestorage.Instance}
}

type impl struct {
	storage filestorage.Provider
}

// task renders one artifact and persists it, recording the stored
// reference into target.
type task struct {
	render func() ([]byte, error)
	kind   filestorage.DocumentKind
	format filestorage.Format
	target *cvapimodels.ArtifactRef
}

func (i *impl) GenerateApplicationKit(ctx context.Context, resume cvapimodels.ResumeContent, letter cvapimodels.CoverLetterContent, identity cvapimodels.Identity, opts cvapimodels.RenderOptions) (cvapimodels.ApplicationKit, error) {
	resumeBlocks := compose.ResumeBlocks(resume, identity, opts)
	letterBlocks := compose.CoverLetterBlocks(letter, identity)

	var kit cvapimodels.ApplicationKit
	err := i.runBatch(ctx, identity, []task{
		{func() ([]byte, error) { return docx.RenderResume(resumeBlocks) }, filestorage.KindResume, filestorage.FormatDocx, &kit.ResumeDocx},
		{func() ([]byte, error) { return pdf.RenderResume(resumeBlocks) }, filestorage.KindResume, filestorage.FormatPdf, &kit.ResumePdf},
		{func() ([]byte, error) { return docx.RenderCoverLetter(letterBlocks) }, filestorage.KindCoverLetter, filestorage.FormatDocx, &kit.CoverLetterDocx},
		{func() ([]byte, error) { return pdf.RenderCoverLetter(letterBlocks) }, filestorage.KindCoverLetter, filestorage.FormatPdf, &kit.CoverLetterPdf},
	})
	if err != nil {
		return cvapimodels.ApplicationKit{}, err
	}
	return kit, nil
}

func (i *impl) GenerateResume(ctx context.Context, content cvapimodels.ResumeContent, identity cvapimodels.Identity, opts cvapimodels.RenderOptions) (docxRef, pdfRef cvapimodels.ArtifactRef, err error) {
	blocks := compose.ResumeBlocks(content, identity, opts)
	err = i.runBatch(ctx, identity, []task{
		{func() ([]byte, error) { return docx.RenderResume(blocks) }, filestorage.KindResume, filestorage.FormatDocx, &docxRef},
		{func() ([]byte, error) { return pdf.RenderResume(blocks) }, filestorage.KindResume, filestorage.FormatPdf, &pdfRef},
	})
	if err != nil {
		return cvapimodels.ArtifactRef{}, cvapimodels.ArtifactRef{}, err
	}
	return docxRef, pdfRef, nil
}

func (i *impl) GenerateCoverLetter(ctx context.Context, content cvapimodels.CoverLetterContent, identity cvapimodels.Identity) (docxRef, pdfRef cvapimodels.ArtifactRef, err error) {
	blocks := compose.CoverLetterBlocks(content, identity)
	err = i.runBatch(ctx, identity, []task{
		{func() ([]byte, error) { return docx.RenderCoverLetter(blocks) }, filestorage.KindCoverLetter, filestorage.FormatDocx, &docxRef},
		{func() ([]byte, error) { return pdf.RenderCoverLetter(blocks) }, filestorage.KindCoverLetter, filestorage.FormatPdf, &pdfRef},
	})
	if err != nil {
		return cvapimodels.ArtifactRef{}, cvapimodels.ArtifactRef{}, err
	}
	return docxRef, pdfRef, nil
}

// runBatch fans the tasks out concurrently and waits for all of them.
// A failure in any task fails the batch as a whole. Artifacts already
// stored by sibling tasks are not rolled back; the orphans are logged
// so the retention collaborator can reclaim them.
func (i *impl) runBatch(ctx context.Context, identity cvapimodels.Identity, tasks []task) error {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var stored []string

	for _, t := range tasks {
		t := t
		g.Go(func() error {
			data, err := t.render()
			if err != nil {
				return errors.Wrapf(err, "render %s %s", t.kind, t.format)
			}
			fileName := filestorage.BuildFileName(identity.FullName, t.kind, t.format)
			ref, err := i.storage.Upload(ctx, fileName, data, t.format.ContentType())
			if err != nil {
				return errors.Wrapf(err, "store %s", fileName)
			}
			mu.Lock()
			*t.target = ref
			stored = append(stored, ref.FileName)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		mu.Lock()
		orphans := stored
		mu.Unlock()
		if len(orphans) > 0 {
			log.WithField("files", orphans).
				WithError(err).
				Warn("generation batch failed, stored artifacts left without an owning record")
		}
		return err
	}
	return nil
}
