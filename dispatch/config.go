package dispatch

import (
	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/session"
	"github.com/jonwraymond/anythingllm-mcp/tools"
	"github.com/rs/zerolog"
)

// Config configures a Dispatcher.
type Config struct {
	// Registry holds the tool specs.
	// Required.
	Registry *tools.Registry

	// Sessions holds the active session.
	// Required.
	Sessions *session.Store

	// DefaultBaseURL is used when the initialize call omits baseUrl.
	// Default: anythingllm.DefaultBaseURL
	DefaultBaseURL string

	// Logger receives one event per call. The zero value discards.
	Logger zerolog.Logger

	// ValidateInput checks arguments against the tool's input schema.
	// Violations are logged and the call proceeds.
	// Default: false
	ValidateInput bool
}

// validate checks that required fields are set.
func (c *Config) validate() error {
	if c.Registry == nil {
		return ErrRegistryRequired
	}
	if c.Sessions == nil {
		return ErrSessionsRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (c *Config) applyDefaults() {
	if c.DefaultBaseURL == "" {
		c.DefaultBaseURL = anythingllm.DefaultBaseURL
	}
}
