package dispatch

import "time"

// Result is the outcome of a single tool call.
// Exactly one of Value and Error is meaningful.
type Result struct {
	// Tool is the requested tool name.
	Tool string

	// CallID identifies the call in logs.
	CallID string

	// Value is the decoded backend payload on success. It may be nil.
	Value any

	// Error is non-nil if the call failed.
	Error error

	// Duration is how long the call took.
	Duration time.Duration
}

// OK returns true if the result has no error.
func (r Result) OK() bool {
	return r.Error == nil
}
