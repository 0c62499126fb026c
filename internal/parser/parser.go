// Package parser recovers a structured resume from loosely formatted
// plain text. It is a heuristic, line-oriented pipeline: the name is
// taken from the first line, contact details are scanned from the top of
// the document, known section headers partition the remaining lines, and
// each section is handed to its own sub-parser. Malformed content never
// fails a parse; unrecognized lines degrade to defaults or are dropped.
package parser

import (
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// Section header literals recognized by the segmenter. Matching is
// case-insensitive on the trimmed line.
const (
	sectionSummary        = "SUMMARY"
	sectionExperience     = "EXPERIENCE"
	sectionEducation      = "EDUCATION"
	sectionCertifications = "CERTIFICATIONS"
	sectionSkills         = "SKILLS"
	sectionHonorsAwards   = "HONORS AND AWARDS"
)

// bulletMarker prefixes detail lines in EXPERIENCE, CERTIFICATIONS and
// HONORS AND AWARDS sections.
const bulletMarker = "•"

// Parse transforms resume text into a structured record. It is total
// over its input: any text yields a record, with missing sections left
// at their defaults. Parsing the same text twice yields structurally
// identical records.
func Parse(content string) *record.Resume {
	r := record.New()

	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		r.Name = strings.TrimSpace(lines[0])
	}

	extractContact(lines, &r.Contact)

	sections := segment(lines)
	if span, ok := sections[sectionSummary]; ok {
		r.Summary = strings.Join(span, "\n")
	}
	if span, ok := sections[sectionExperience]; ok {
		r.Experience = parseExperience(span)
	}
	if span, ok := sections[sectionEducation]; ok {
		r.Education = parseEducation(span)
	}
	if span, ok := sections[sectionCertifications]; ok {
		r.Certifications = parseCertifications(span)
	}
	if span, ok := sections[sectionSkills]; ok {
		r.Skills = parseSkills(span)
	}
	if span, ok := sections[sectionHonorsAwards]; ok {
		r.HonorsAwards = parseHonorsAwards(span)
	}

	return r
}
