package parser

import (
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// parseHonorsAwards pairs bullet lines with the most recent organization
// line, mirroring the certifications sub-parser. Bullets preceding any
// organization line are dropped.
func parseHonorsAwards(lines []string) []record.Award {
	awards := []record.Award{}

	var org string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, bulletMarker) {
			name := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))
			if org != "" {
				awards = append(awards, record.Award{
					Organization: org,
					Award:        name,
				})
			}
			continue
		}

		org = line
	}
	return awards
}
