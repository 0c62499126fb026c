package parser

import (
	"regexp"
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// skillSeparator splits a skill line into individual tokens.
var skillSeparator = regexp.MustCompile(`[,|]`)

// parseSkills buckets skills under category headers. A line ending in a
// colon switches the current category; other lines are split on comma or
// pipe and appended to it. Skills before any header land in the
// "General" bucket. Buckets are append-only: re-declaring a category
// keeps what it already holds.
func parseSkills(lines []string) *record.Skills {
	skills := record.NewSkills()

	category := record.DefaultSkillCategory
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") {
			category = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			skills.Ensure(category)
			continue
		}

		skills.Ensure(category)
		for _, token := range skillSeparator.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token != "" {
				skills.Append(category, token)
			}
		}
	}
	return skills
}
