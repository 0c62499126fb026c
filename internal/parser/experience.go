package parser

import (
	"regexp"
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// datePattern is the loose MM/YYYY shape that anchors date-range
// detection.
var datePattern = regexp.MustCompile(`\d{2}/\d{4}`)

// parseExperience runs a small state machine over the EXPERIENCE span.
// Resumes rarely label company, title and dates explicitly, so structure
// is inferred from line shape. Rolling state holds the current company,
// position, period and accumulated bullets; a completed job is flushed
// when a new company line is detected and once more at end of input.
//
// Per non-blank line, in priority order:
//
//  1. A bullet line extends the current description.
//  2. A date-range line sets the period.
//  3. If a company is already in progress and the line looks like a new
//     company (more than two words, or bullets have already accumulated
//     under the current one), the current job is flushed and the line
//     starts the next.
//  4. Otherwise the line fills the first empty slot, company then
//     position; with both taken it is dropped.
func parseExperience(lines []string) []record.Job {
	jobs := []record.Job{}

	var company, position, period string
	description := []string{}

	flush := func() {
		jobs = append(jobs, record.Job{
			Company:     company,
			Position:    position,
			Period:      period,
			Description: description,
		})
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, bulletMarker) {
			description = append(description, strings.TrimSpace(strings.TrimPrefix(line, bulletMarker)))
			continue
		}

		if isDateRange(line) {
			period = line
			continue
		}

		if company != "" && looksLikeNewCompany(line, description) {
			flush()
			company = line
			position = ""
			period = ""
			description = []string{}
			continue
		}

		if company == "" {
			company = line
		} else if position == "" {
			position = line
		}
		// Both slots taken and nothing else matched: the line has
		// nowhere to go and is dropped.
	}

	if company != "" {
		flush()
	}
	return jobs
}

// isDateRange reports whether a line reads as an employment period:
// an MM/YYYY substring plus either the word "present" or a hyphenated
// range with a date on each side.
func isDateRange(line string) bool {
	if !datePattern.MatchString(line) {
		return false
	}
	if strings.Contains(strings.ToLower(line), "present") {
		return true
	}
	return strings.Contains(line, "-") && strings.Count(line, "/") >= 2
}

// looksLikeNewCompany guesses that a line starts a new job entry. Long
// lines read as company names rather than titles; any line after bullets
// have accumulated ends the current entry, since bullets close out a
// job's description.
func looksLikeNewCompany(line string, description []string) bool {
	return len(strings.Fields(line)) > 2 || len(description) > 0
}
