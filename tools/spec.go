package tools

import (
	"context"
	"strings"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namespace is the tool namespace used for discovery.
const Namespace = "anythingllm"

// Handler translates tool arguments into connector calls.
// Handlers let failures propagate; the dispatcher normalizes them.
type Handler func(ctx context.Context, client *anythingllm.Client, args Args) (any, error)

// Spec binds a tool definition to its handler.
//
// Contract:
// - Immutability: a Spec must not be modified after it is registered.
// - Initialize: exactly the session-initialization tool sets Initialize and
// has no Handler; the dispatcher handles it itself.
type Spec struct {
	// Tool is the protocol-facing definition (name, title, description, schema).
	Tool model.Tool

	// Initialize marks the tool that populates the session.
	Initialize bool

	// Handler performs the call. Required unless Initialize is set.
	Handler Handler
}

// Name returns the tool name.
func (s Spec) Name() string {
	return s.Tool.Name
}

// Description returns the tool description.
func (s Spec) Description() string {
	return s.Tool.Description
}

// InputSchema returns the tool's input schema.
func (s Spec) InputSchema() any {
	return s.Tool.InputSchema
}

// MCPTool returns a copy of the protocol tool definition.
func (s Spec) MCPTool() *mcp.Tool {
	t := s.Tool.Tool
	return &t
}

// Define builds a Spec in the default namespace.
// The title is derived from the snake_case name.
func Define(name, description string, schema map[string]any, handler Handler, tags ...string) Spec {
	return Spec{
		Tool: model.Tool{
			Tool: mcp.Tool{
				Name:        name,
				Title:       Title(name),
				Description: description,
				InputSchema: schema,
			},
			Namespace: Namespace,
			Tags:      model.NormalizeTags(tags),
		},
		Handler: handler,
	}
}

// Title turns a snake_case tool name into a display title,
// e.g. "list_workspaces" becomes "List Workspaces".
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
