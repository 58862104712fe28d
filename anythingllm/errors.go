package anythingllm

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying connector failures.
var (
	// ErrAPI indicates the AnythingLLM service answered with a non-2xx status.
	// Use errors.As with *APIError to read the status and body.
	ErrAPI = errors.New("anythingllm api error")

	// ErrTransport indicates the service could not be reached at all
	// (DNS, connection refused, TLS, context deadline).
	ErrTransport = errors.New("anythingllm request failed")

	// ErrDecode indicates a 2xx response whose body was not valid JSON.
	ErrDecode = errors.New("anythingllm response decode failed")

	// ErrStream indicates the stream-chat event stream reported an error.
	ErrStream = errors.New("anythingllm stream error")
)

// APIError is returned when the AnythingLLM service responds with a
// non-success status code. Body holds the raw response text verbatim.
type APIError struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Body is the response body as text.
	Body string
}

// Error returns the status code and body in a single line.
func (e *APIError) Error() string {
	return fmt.Sprintf("AnythingLLM API error: %d - %s", e.StatusCode, e.Body)
}

// Is reports whether this error matches the target.
// APIError matches ErrAPI to allow sentinel-style error checking.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}
