package parser

import (
	"sort"
	"strings"
)

// sectionHeaders is the fixed vocabulary of recognized section headers.
var sectionHeaders = []string{
	sectionSummary,
	sectionExperience,
	sectionEducation,
	sectionCertifications,
	sectionSkills,
	sectionHonorsAwards,
}

// segment locates section headers and partitions the document into
// labeled spans. A header line must equal one of the known literals
// after trimming and upper-casing. If a header literal repeats, the last
// occurrence determines the section start. Each span runs from the line
// after its header to the line before the next found header (or end of
// document), with blank lines dropped. Headers never found produce no
// entry.
func segment(lines []string) map[string][]string {
	positions := make(map[string]int, len(sectionHeaders))
	for i, line := range lines {
		upper := strings.ToUpper(strings.TrimSpace(line))
		for _, header := range sectionHeaders {
			if upper == header {
				positions[header] = i
			}
		}
	}

	type foundHeader struct {
		name string
		line int
	}
	found := make([]foundHeader, 0, len(positions))
	for name, line := range positions {
		found = append(found, foundHeader{name: name, line: line})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].line < found[j].line })

	sections := make(map[string][]string, len(found))
	for i, h := range found {
		start := h.line + 1
		end := len(lines)
		if i < len(found)-1 {
			end = found[i+1].line
		}

		span := []string{}
		for _, line := range lines[start:end] {
			if strings.TrimSpace(line) != "" {
				span = append(span, line)
			}
		}
		sections[h.name] = span
	}
	return sections
}
