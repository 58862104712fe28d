package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Render converts a Result into protocol content.
// Success is the value as two-space indented JSON; failure is
// "Error: <message>" with IsError set.
func Render(res Result) *mcp.CallToolResult {
	if !res.OK() {
		return errorResult(res.Error)
	}
	text, err := FormatValue(res.Value)
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// FormatValue pretty-prints v as JSON. A nil value renders as "null".
func FormatValue(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
