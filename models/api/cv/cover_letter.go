package cvapimodels

// CoverLetterContent is the cover-letter payload produced by the content
// generator. Absent paragraphs are skipped; salutation and sign-off fall
// back to stock values during composition.
type CoverLetterContent struct {
	Salutation string `json:"salutation,omitempty"`
	Opening    string `json:"opening,omitempty"`
	Body       string `json:"body,omitempty"`
	CompanyFit string `json:"companyFit,omitempty"`
	Closing    string `json:"closing,omitempty"`
	Signoff    string `json:"signoff,omitempty"`
}
