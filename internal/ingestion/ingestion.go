// Package ingestion loads resume text from disk for parsing.
package ingestion

import (
	"os"
	"strings"
)

// LoadFile reads a plain-text resume and normalizes line endings to LF.
// Line endings are the only thing rewritten; the parser's positional
// heuristics depend on the document's whitespace staying intact. A
// missing or unreadable file is the one fatal error on the parse path.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &InputError{
				Path:    path,
				Message: "file not found",
				Cause:   err,
			}
		}
		return "", &InputError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	return NormalizeLineEndings(string(data)), nil
}

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
