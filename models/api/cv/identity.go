package cvapimodels

// Identity holds the subject's profile fields used for document headers
// and filename derivation.
type Identity struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	Address         string `json:"address,omitempty"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`
	GithubLink      string `json:"github_link,omitempty"`
}

// RenderOptions tunes résumé composition. Tags, when present, become the
// final "Other" section of the document.
type RenderOptions struct {
	CredlyProfileLink string   `json:"credly_profile_link,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}
