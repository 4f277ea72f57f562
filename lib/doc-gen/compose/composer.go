package compose

import (
	"strings"
	"time"

	cvapimodels "cvgen-backend/models/api/cv"
)

const (
	partSeparator   = " | "
	bulletSeparator = " • "
	pairSeparator   = " - "

	defaultSalutation = "Dear Hiring Manager,"
	defaultSignoff    = "Sincerely,"

	letterDateLayout = "January 2, 2006"
)

// ResumeBlocks builds the ordered block sequence for a résumé. Section
// order is fixed; sections with no content are omitted entirely. The
// "Other" section built from opts.Tags is always the last one emitted;
// nothing may be appended after it.
func ResumeBlocks(content cvapimodels.ResumeContent, identity cvapimodels.Identity, opts cvapimodels.RenderOptions) []Block {
	blocks := []Block{
		HeadingBlock{Text: identity.FullName, Level: 1, Centered: true},
	}

	if contact := contactLine(identity); contact != "" {
		blocks = append(blocks, KeyValueLine{Text: contact, Centered: true})
	}
	if links := linksLine(identity); links != "" {
		blocks = append(blocks, KeyValueLine{Text: links, Link: true, Centered: true})
	}

	if strings.TrimSpace(content.Summary) != "" {
		blocks = append(blocks, HeadingBlock{Text: "PROFESSIONAL SUMMARY", Level: 2})
		blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: content.Summary}}})
	}

	blocks = appendSkills(blocks, content.Skills)

	if len(content.Experience) > 0 {
		blocks = append(blocks, HeadingBlock{Text: "PROFESSIONAL EXPERIENCE", Level: 2})
		for _, job := range content.Experience {
			blocks = append(blocks, ParagraphBlock{Runs: []Run{
				{Text: job.Position, Bold: true},
				{Text: partSeparator + job.Company},
			}})
			// Empty location or period still renders the separator line,
			// matching previously generated documents.
			blocks = append(blocks, ParagraphBlock{Runs: []Run{
				{Text: job.Location + partSeparator + job.Period, Italic: true, Muted: true},
			}})
			if len(job.Achievements) > 0 {
				blocks = append(blocks, BulletListBlock{Items: job.Achievements})
			}
		}
	}

	if len(content.Education) > 0 {
		blocks = append(blocks, HeadingBlock{Text: "EDUCATION", Level: 2})
		for _, edu := range content.Education {
			blocks = append(blocks, ParagraphBlock{Runs: []Run{
				{Text: edu.Degree, Bold: true},
				{Text: pairSeparator + edu.Institution},
			}})
			if line := joinPresent(partSeparator, edu.Graduation, edu.Details); line != "" {
				blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: line, Italic: true}}})
			}
		}
	}

	if len(content.Certifications) > 0 {
		blocks = append(blocks, HeadingBlock{Text: "CERTIFICATIONS", Level: 2})
		if opts.CredlyProfileLink != "" {
			blocks = append(blocks, KeyValueLine{Text: "Credly Profile: " + opts.CredlyProfileLink, Link: true})
		}
		blocks = append(blocks, BulletListBlock{Items: content.Certifications})
	}

	// Tags form the final section; no section may follow it.
	if len(opts.Tags) > 0 {
		blocks = append(blocks, HeadingBlock{Text: "OTHER", Level: 2})
		blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: strings.Join(opts.Tags, bulletSeparator)}}})
	}

	return blocks
}

func appendSkills(blocks []Block, skills cvapimodels.Skills) []Block {
	if skills.IsEmpty() {
		return blocks
	}
	blocks = append(blocks, HeadingBlock{Text: "SKILLS", Level: 2})

	if len(skills.Flat) > 0 {
		// Legacy shape: one paragraph joining every entry, regardless of
		// any colon characters inside them.
		return append(blocks, ParagraphBlock{Runs: []Run{
			{Text: strings.Join(skills.Flat, bulletSeparator)},
		}})
	}

	for _, line := range strings.Split(skills.Categorized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.Index(line, ":"); idx > 0 {
			category := strings.TrimSpace(line[:idx])
			items := strings.TrimSpace(line[idx+1:])
			blocks = append(blocks, ParagraphBlock{Runs: []Run{
				{Text: category + ": ", Bold: true},
				{Text: items},
			}})
			continue
		}
		blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: line}}})
	}
	return blocks
}

// CoverLetterBlocks builds the block sequence for a cover letter, dated
// with the engine-local current day.
func CoverLetterBlocks(content cvapimodels.CoverLetterContent, identity cvapimodels.Identity) []Block {
	return coverLetterBlocksAt(content, identity, time.Now())
}

func coverLetterBlocksAt(content cvapimodels.CoverLetterContent, identity cvapimodels.Identity, now time.Time) []Block {
	blocks := []Block{
		HeadingBlock{Text: identity.FullName, Level: 1},
	}
	if contact := contactLine(identity); contact != "" {
		blocks = append(blocks, KeyValueLine{Text: contact})
	}

	blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: now.Format(letterDateLayout)}}})

	salutation := content.Salutation
	if strings.TrimSpace(salutation) == "" {
		salutation = defaultSalutation
	}
	blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: salutation}}})

	for _, para := range []string{content.Opening, content.Body, content.CompanyFit, content.Closing} {
		if strings.TrimSpace(para) == "" {
			continue
		}
		blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: para}}})
	}

	signoff := content.Signoff
	if strings.TrimSpace(signoff) == "" {
		signoff = defaultSignoff
	}
	blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: signoff}}})
	blocks = append(blocks, ParagraphBlock{Runs: []Run{{Text: identity.FullName}}})

	return blocks
}

func contactLine(identity cvapimodels.Identity) string {
	return joinPresent(partSeparator, identity.Email, identity.PhoneNumber, identity.Address)
}

func linksLine(identity cvapimodels.Identity) string {
	var parts []string
	if identity.LinkedinProfile != "" {
		parts = append(parts, "LinkedIn: "+identity.LinkedinProfile)
	}
	if identity.GithubLink != "" {
		parts = append(parts, "GitHub: "+identity.GithubLink)
	}
	return strings.Join(parts, partSeparator)
}

func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
