package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"cvgen-backend/initializers"
	docgen "cvgen-backend/lib/doc-gen"
	cvapimodels "cvgen-backend/models/api/cv"
)

// generationInput mirrors what the content generator hands the engine:
// one résumé payload, one cover-letter payload, the subject identity and
// render options.
type generationInput struct {
	Resume      cvapimodels.ResumeContent      `json:"resume"`
	CoverLetter cvapimodels.CoverLetterContent `json:"cover_letter"`
	Identity    cvapimodels.Identity           `json:"identity"`
	Options     cvapimodels.RenderOptions      `json:"options"`
}

func main() {
	inputPath := flag.String("input", "input.json", "path to the generation input JSON")
	flag.Parse()

	ctx := context.Background()
	initializers.InitAllServices(ctx)

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.WithError(err).Fatal("failed to read generation input")
	}
	var input generationInput
	if err := json.Unmarshal(data, &input); err != nil {
		log.WithError(err).Fatal("failed to parse generation input")
	}

	kit, err := docgen.Instance.GenerateApplicationKit(ctx, input.Resume, input.CoverLetter, input.Identity, input.Options)
	if err != nil {
		log.WithError(err).Fatal("generation failed")
	}

	log.WithField("resume_docx", kit.ResumeDocx.FileName).
		WithField("resume_pdf", kit.ResumePdf.FileName).
		WithField("cover_letter_docx", kit.CoverLetterDocx.FileName).
		WithField("cover_letter_pdf", kit.CoverLetterPdf.FileName).
		Info("application kit generated")
}
