// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed record.
func (p *Printer) PrintResume(r *record.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", r.Name))
	if r.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", r.Contact.Email))
	}
	if r.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", r.Contact.Phone))
	}
	if r.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", r.Contact.Location))
	}
	sb.WriteString("\n")

	if r.Summary != "" {
		sb.WriteString("Summary: present\n")
	}
	sb.WriteString(fmt.Sprintf("Jobs:           %d\n", len(r.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(r.Education)))
	if r.Skills != nil {
		sb.WriteString(fmt.Sprintf("Skill buckets:  %d\n", r.Skills.Len()))
	}
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(r.Certifications)))
	sb.WriteString(fmt.Sprintf("Awards:         %d", len(r.HonorsAwards)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintExperience outputs the parsed jobs with their bullet counts.
func (p *Printer) PrintExperience(jobs []record.Job) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.Company))
		if job.Position != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", job.Position))
		}
		if job.Period != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", job.Period))
		}
		sb.WriteString(fmt.Sprintf("    Bullets: %d\n", len(job.Description)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skill categories in document order.
func (p *Printer) PrintSkills(skills *record.Skills) {
	if skills == nil || skills.Len() == 0 {
		return
	}

	var sb strings.Builder
	categories := skills.Categories()
	count := min(len(categories), maxItemsToShow)
	for i := 0; i < count; i++ {
		category := categories[i]
		list := strings.Join(skills.Get(category), ", ")
		if len(list) > 40 {
			list = list[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", category, list))
	}
	if len(categories) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more categories\n", len(categories)-maxItemsToShow))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
