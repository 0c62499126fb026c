package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewarz/resumeforge/internal/record"
)

func TestParseExperience_TwoJobs(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"Senior Engineer",
		"01/2020 - present",
		"• Built the thing",
		"• Shipped the other thing",
		"Beta Inc",
		"Engineer",
	}

	jobs := parseExperience(lines)

	require.Len(t, jobs, 2)
	assert.Equal(t, record.Job{
		Company:     "Acme Corp",
		Position:    "Senior Engineer",
		Period:      "01/2020 - present",
		Description: []string{"Built the thing", "Shipped the other thing"},
	}, jobs[0])
	assert.Equal(t, record.Job{
		Company:     "Beta Inc",
		Position:    "Engineer",
		Period:      "",
		Description: []string{},
	}, jobs[1])
}

func TestParseExperience_SingleJob(t *testing.T) {
	jobs := parseExperience([]string{"Acme Corp", "Engineer"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Engineer", jobs[0].Position)
	assert.Empty(t, jobs[0].Period)
	assert.Empty(t, jobs[0].Description)
}

func TestParseExperience_Empty(t *testing.T) {
	assert.Empty(t, parseExperience(nil))
	assert.Empty(t, parseExperience([]string{"", "  "}))
}

func TestParseExperience_LongLineStartsNewJob(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"Engineer",
		"Globex Consolidated Industries",
	}

	jobs := parseExperience(lines)

	// A line with more than two words reads as a company name.
	require.Len(t, jobs, 2)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Globex Consolidated Industries", jobs[1].Company)
	assert.Empty(t, jobs[1].Position)
}

func TestParseExperience_ExtraLineWithNoSlotIsDropped(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"Engineer",
		"Platform", // company and position taken, short line, no bullets yet
	}

	jobs := parseExperience(lines)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Engineer", jobs[0].Position)
}

func TestParseExperience_BulletsCloseOutCurrentJob(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"• Did a thing",
		"Beta Inc",
	}

	jobs := parseExperience(lines)

	require.Len(t, jobs, 2)
	assert.Equal(t, []string{"Did a thing"}, jobs[0].Description)
	assert.Equal(t, "Beta Inc", jobs[1].Company)
}

func TestIsDateRange(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"open ended with present", "01/2020 - present", true},
		{"present uppercase", "01/2020 - PRESENT", true},
		{"closed range", "01/2020 - 06/2023", true},
		{"no date shape", "Senior Engineer", false},
		{"date without range context", "01/2020", false},
		{"single date with hyphen only", "01/2020 -", false},
		{"one-digit month not a date", "1/2020 - present", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateRange(tt.line))
		})
	}
}

func TestParseExperience_DateLineDoesNotTouchSlots(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"01/2019 - 12/2019",
		"Engineer",
	}

	jobs := parseExperience(lines)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Engineer", jobs[0].Position)
	assert.Equal(t, "01/2019 - 12/2019", jobs[0].Period)
}

func TestParseExperience_BulletBeforeAnyCompany(t *testing.T) {
	lines := []string{
		"• Orphan bullet",
		"Acme Corp",
	}

	jobs := parseExperience(lines)

	// Bullets accumulate even before a company line; they flush with the
	// first job.
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, []string{"Orphan bullet"}, jobs[0].Description)
}
