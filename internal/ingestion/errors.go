package ingestion

import "fmt"

// InputError represents a failure to read the input document.
type InputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("input error: %s: %s", e.Message, e.Path)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
