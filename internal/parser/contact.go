package parser

import (
	"regexp"
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// contactScanLines caps how far into the document the contact extractor
// looks. Contact blocks conventionally sit directly under the name line.
const contactScanLines = 10

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// 10-digit phone grouped 3-3-4; each group may carry a trailing
	// space, dot or hyphen separator.
	phonePattern = regexp.MustCompile(`\d{3}[\s.-]?\d{3}[\s.-]?\d{4}`)
	// "City, ST" or "City, State"; must cover the entire trimmed line so
	// that sentence fragments with commas do not match.
	locationPattern = regexp.MustCompile(`^[A-Za-z\s]+,\s+[A-Za-z\s]{2,}$`)
)

// extractContact scans the top of the document for email, phone and
// location. Email and phone are matched against the joined block so a
// value split across columns is still found; location is matched
// line-by-line because the pattern would otherwise bridge line breaks.
// Fields with no match are left empty. First match wins for each field.
func extractContact(lines []string, c *record.Contact) {
	top := lines
	if len(top) > contactScanLines {
		top = top[:contactScanLines]
	}

	block := strings.Join(top, "\n")
	if m := emailPattern.FindString(block); m != "" {
		c.Email = m
	}
	if m := phonePattern.FindString(block); m != "" {
		c.Phone = m
	}

	for _, line := range top {
		trimmed := strings.TrimSpace(line)
		if locationPattern.MatchString(trimmed) {
			c.Location = trimmed
			break
		}
	}
}
