package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewarz/resumeforge/internal/record"
)

const sampleResume = `Jane Doe
jane@x.com
555-123-4567
Austin, TX

SUMMARY
Engineer with a decade of distributed systems work.

EXPERIENCE
Acme Corp
Senior Engineer
01/2020 - present
• Built the thing
• Shipped the other thing
Beta Inc
Engineer

EDUCATION
BS Computer Science, State University, 2012

CERTIFICATIONS
Amazon Web Services
• Solutions Architect Associate

SKILLS
Languages:
Python, Go, Rust
Tools:
Git|Docker

HONORS AND AWARDS
Acme Corp
• Engineer of the Year
`

func TestParse_FullDocument(t *testing.T) {
	r := Parse(sampleResume)

	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, "jane@x.com", r.Contact.Email)
	assert.Equal(t, "555-123-4567", r.Contact.Phone)
	assert.Equal(t, "Austin, TX", r.Contact.Location)
	assert.Equal(t, "Engineer with a decade of distributed systems work.", r.Summary)

	require.Len(t, r.Experience, 2)
	assert.Equal(t, "Acme Corp", r.Experience[0].Company)
	assert.Equal(t, "Beta Inc", r.Experience[1].Company)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "Education", r.Education[0].Institution)
	assert.Equal(t, "BS Computer Science, State University, 2012", r.Education[0].Degree)

	require.Len(t, r.Certifications, 1)
	assert.Equal(t, "Amazon Web Services", r.Certifications[0].Provider)
	assert.Equal(t, "Solutions Architect Associate", r.Certifications[0].Certification)

	assert.Equal(t, []string{"Python", "Go", "Rust"}, r.Skills.Get("Languages"))
	assert.Equal(t, []string{"Git", "Docker"}, r.Skills.Get("Tools"))

	require.Len(t, r.HonorsAwards, 1)
	assert.Equal(t, "Acme Corp", r.HonorsAwards[0].Organization)
	assert.Equal(t, "Engineer of the Year", r.HonorsAwards[0].Award)
}

func TestParse_NameOnly(t *testing.T) {
	r := Parse("Jane Doe\n")

	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, record.Contact{}, r.Contact)
	assert.Empty(t, r.Summary)
	assert.Empty(t, r.Experience)
	assert.Empty(t, r.Education)
	assert.Zero(t, r.Skills.Len())
	assert.Empty(t, r.Certifications)
	assert.Empty(t, r.HonorsAwards)
}

func TestParse_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"blank first line", "\nSUMMARY\nSomething"},
		{"whitespace first line", "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(tt.input)
			assert.Equal(t, record.PlaceholderName, r.Name)
		})
	}
}

func TestParse_TrimsNameLine(t *testing.T) {
	r := Parse("  Jane Doe  \n")
	assert.Equal(t, "Jane Doe", r.Name)
}

func TestParse_Idempotent(t *testing.T) {
	first := Parse(sampleResume)
	second := Parse(sampleResume)
	assert.Equal(t, first, second)
}

func TestParse_LowercaseHeaders(t *testing.T) {
	input := "Jane Doe\n\nexperience\nAcme Corp\nEngineer\n\nsummary\nHands-on builder."
	r := Parse(input)

	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme Corp", r.Experience[0].Company)
	assert.Equal(t, "Hands-on builder.", r.Summary)
}

func TestParse_IndentedHeaders(t *testing.T) {
	input := "Jane Doe\n\n   SKILLS   \nGo, Rust"
	r := Parse(input)

	assert.Equal(t, []string{"Go", "Rust"}, r.Skills.Get(record.DefaultSkillCategory))
}

func TestParse_MultiLineSummary(t *testing.T) {
	input := "Jane Doe\n\nSUMMARY\nFirst line.\n\nSecond line.\n\nEXPERIENCE\nAcme Corp"
	r := Parse(input)

	// Blank lines inside the span are dropped before joining.
	assert.Equal(t, "First line.\nSecond line.", r.Summary)
}
