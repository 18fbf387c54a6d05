package tour

import "fmt"

// PresetError reports a malformed viewpoint document.
type PresetError struct {
	Index   int    // Position of the offending viewpoint, -1 for the document itself
	Message string // What is wrong
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *PresetError) Error() string {
	where := "preset document"
	if e.Index >= 0 {
		where = fmt.Sprintf("viewpoint %d", e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", where, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *PresetError) Unwrap() error {
	return e.Err
}
