package textpulse

import "errors"

// Sentinel errors for boundary-level contract violations. Degenerate text
// (empty, pure punctuation, non-Latin script) is never an error: every engine
// degrades to empty or neutral results instead.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
)
