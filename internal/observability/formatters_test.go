package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewarz/resumeforge/internal/record"
)

func TestPrintResume(t *testing.T) {
	r := record.New()
	r.Name = "Jane Doe"
	r.Contact.Email = "jane@x.com"
	r.Experience = []record.Job{{Company: "Acme Corp"}}
	r.Skills.Append("Languages", "Go")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(r)

	out := buf.String()
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@x.com")
	assert.Contains(t, out, "Jobs:           1")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExperience(t *testing.T) {
	jobs := []record.Job{
		{Company: "Acme Corp", Position: "Engineer", Period: "01/2020 - present", Description: []string{"a", "b"}},
		{Company: "Beta Inc"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(jobs)

	out := buf.String()
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "#1  Acme Corp")
	assert.Contains(t, out, "Bullets: 2")
	assert.Contains(t, out, "#2  Beta Inc")
}

func TestPrintExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	skills := record.NewSkills()
	skills.Append("Languages", "Go", "Rust")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills(skills)

	out := buf.String()
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "Languages: Go, Rust")
}

func TestPrintSkills_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills(record.NewSkills())
	assert.Empty(t, buf.String())
}
