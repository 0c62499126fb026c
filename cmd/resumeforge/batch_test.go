package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"txt extension", "resume.txt", "resume.html"},
		{"no extension", "resume", "resume.html"},
		{"nested path", "in/dir/jane_doe.txt", "jane_doe.html"},
		{"dotted name", "jane.doe.txt", "jane.doe.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, htmlName(tt.input))
		})
	}
}
