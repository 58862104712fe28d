package dispatch

import (
	"errors"
	"fmt"
)

// Errors returned by Config validation.
var (
	ErrRegistryRequired = errors.New("dispatch: Registry is required")
	ErrSessionsRequired = errors.New("dispatch: Sessions store is required")
)

// Failure classifications carried in Result.Error.
var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrNotInitialized  = errors.New("AnythingLLM client not initialized. Please run initialize_anythingllm first.")
	ErrMissingArgument = errors.New("missing required argument")
	ErrHandlerPanic    = errors.New("tool handler panicked")
)

// UnknownToolError reports a call to a name that is not registered.
type UnknownToolError struct {
	Name string
}

// Error returns the protocol-facing message.
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// Is reports whether target is ErrUnknownTool.
func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}
