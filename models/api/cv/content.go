package cvapimodels

import (
	"encoding/json"
	"strings"
)

// ResumeContent is the résumé payload produced by the content generator.
// Every field is optional; absent or malformed fields render as omitted
// sections, never as placeholders.
type ResumeContent struct {
	Summary        string       `json:"summary,omitempty"`
	Skills         Skills       `json:"skills,omitempty"`
	Experience     []Experience `json:"experience,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
}

// Skills carries one of two historical payload shapes: the current format
// is a single string of newline-delimited "Category: item, item" lines,
// the legacy format is a flat list of skill names. The shape is resolved
// once here, not re-sniffed by the renderers.
type Skills struct {
	Categorized string
	Flat        []string
}

func (s Skills) IsEmpty() bool {
	return strings.TrimSpace(s.Categorized) == "" && len(s.Flat) == 0
}

func (s *Skills) UnmarshalJSON(data []byte) error {
	var categorized string
	if err := json.Unmarshal(data, &categorized); err == nil {
		s.Categorized = categorized
		return nil
	}
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		s.Flat = flat
		return nil
	}
	// Any other shape is treated as absent to keep rendering total.
	*s = Skills{}
	return nil
}

func (s Skills) MarshalJSON() ([]byte, error) {
	if len(s.Flat) > 0 {
		return json.Marshal(s.Flat)
	}
	return json.Marshal(s.Categorized)
}

type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Period       string   `json:"period,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Graduation  string `json:"graduation,omitempty"`
	Details     string `json:"details,omitempty"`
}
