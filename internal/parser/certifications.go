package parser

import (
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

// parseCertifications walks the CERTIFICATIONS span pairing bullet lines
// with the most recent non-bullet line, which names the provider. A
// bullet seen before any provider line has no context and is dropped.
func parseCertifications(lines []string) []record.Certification {
	certs := []record.Certification{}

	var provider string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, bulletMarker) {
			name := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))
			if provider != "" {
				certs = append(certs, record.Certification{
					Provider:      provider,
					Certification: name,
				})
			}
			continue
		}

		provider = line
	}
	return certs
}
