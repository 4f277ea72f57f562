package cvapimodels

// Artifact is the output of one renderer invocation before persistence.
type Artifact struct {
	FileName string
	Data     []byte
}

// ArtifactRef points at a persisted artifact. FileName is the storage key
// (display name + "_" + UUID + extension); URL is set when the backend
// resolves one.
type ArtifactRef struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
}

// ApplicationKit references the four artifacts of one generation request.
type ApplicationKit struct {
	ResumeDocx      ArtifactRef `json:"resume_docx"`
	ResumePdf       ArtifactRef `json:"resume_pdf"`
	CoverLetterDocx ArtifactRef `json:"cover_letter_docx"`
	CoverLetterPdf  ArtifactRef `json:"cover_letter_pdf"`
}
