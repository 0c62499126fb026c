package parser

import (
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// educationLabel is the fixed institution label for the single entry the
// education sub-parser emits.
const educationLabel = "Education"

// parseEducation emits one entry carrying the whole span verbatim in the
// degree field. No attempt is made to split institution, degree and
// dates; an empty span yields no entry.
func parseEducation(lines []string) []record.Education {
	content := strings.Join(lines, "\n")
	if content == "" {
		return []record.Education{}
	}
	return []record.Education{{
		Institution: educationLabel,
		Degree:      content,
		Period:      "",
		Details:     []string{},
	}}
}
