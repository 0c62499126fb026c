package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewarz/resumeforge/internal/record"
)

func TestParseSkills_Categories(t *testing.T) {
	lines := []string{
		"Languages:",
		"Python, Go, Rust",
		"Tools:",
		"Git|Docker",
	}

	skills := parseSkills(lines)

	assert.Equal(t, map[string][]string{
		"Languages": {"Python", "Go", "Rust"},
		"Tools":     {"Git", "Docker"},
	}, skills.Map())
	assert.Equal(t, []string{"Languages", "Tools"}, skills.Categories())
}

func TestParseSkills_DefaultCategory(t *testing.T) {
	skills := parseSkills([]string{"Go, Rust"})

	assert.Equal(t, []string{"Go", "Rust"}, skills.Get(record.DefaultSkillCategory))
	assert.Equal(t, []string{record.DefaultSkillCategory}, skills.Categories())
}

func TestParseSkills_MixedSeparators(t *testing.T) {
	skills := parseSkills([]string{"Go, Rust | Python,C"})
	assert.Equal(t, []string{"Go", "Rust", "Python", "C"}, skills.Get(record.DefaultSkillCategory))
}

func TestParseSkills_EmptyTokensDropped(t *testing.T) {
	skills := parseSkills([]string{"Go,,  , Rust,"})
	assert.Equal(t, []string{"Go", "Rust"}, skills.Get(record.DefaultSkillCategory))
}

func TestParseSkills_RedeclaredCategoryKeepsSkills(t *testing.T) {
	lines := []string{
		"Languages:",
		"Go",
		"Tools:",
		"Git",
		"Languages:",
		"Rust",
	}

	skills := parseSkills(lines)

	// Buckets are append-only; re-declaring a category must not clear it.
	assert.Equal(t, []string{"Go", "Rust"}, skills.Get("Languages"))
	assert.Equal(t, []string{"Languages", "Tools"}, skills.Categories())
}

func TestParseSkills_CategoryWithNoSkills(t *testing.T) {
	skills := parseSkills([]string{"Languages:"})

	require.Equal(t, 1, skills.Len())
	assert.Empty(t, skills.Get("Languages"))
}

func TestParseSkills_MultiLineCategory(t *testing.T) {
	lines := []string{
		"Cloud:",
		"AWS, GCP",
		"Azure",
	}

	skills := parseSkills(lines)
	assert.Equal(t, []string{"AWS", "GCP", "Azure"}, skills.Get("Cloud"))
}
