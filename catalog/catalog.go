// Package catalog declares the AnythingLLM tool set.
//
// Each tool is a tools.Spec whose handler performs one connector call (two
// for update_workspace, which refetches after updating). Handlers only
// substitute defaults for optional arguments; failures propagate to the
// dispatcher unchanged.
package catalog

import (
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

// Argument defaults.
const (
	DefaultChatMode     = "chat"
	DefaultHistoryLimit = 100
	DefaultSearchLimit  = 10
)

// InitializeTool is the name of the session initialization tool.
const InitializeTool = "initialize_anythingllm"

// Specs returns the tool specs in listing order.
func Specs() []tools.Spec {
	return []tools.Spec{
		initialize,
		listWorkspaces,
		getWorkspace,
		createWorkspace,
		updateWorkspace,
		deleteWorkspace,
		chatWithWorkspace,
		streamChatWithWorkspace,
		uploadDocument,
		listDocuments,
		deleteDocument,
		getSystemSettings,
		updateSystemSettings,
		listUsers,
		createUser,
		updateUser,
		deleteUser,
		listAPIKeys,
		createAPIKey,
		deleteAPIKey,
		embedText,
		embedWebpage,
		getChatHistory,
		clearChatHistory,
		getSystemInfo,
		getSystemStats,
		listLLMProviders,
		updateLLMProvider,
		getVectorDatabaseInfo,
		updateVectorDatabase,
		getWorkspaceSettings,
		updateWorkspaceSettings,
		processDocumentURL,
		getDocumentVectors,
		searchWorkspace,
		listAgents,
		createAgent,
		updateAgent,
		deleteAgent,
		invokeAgent,
	}
}

// New builds a registry holding every catalog tool.
func New() (*tools.Registry, error) {
	return tools.NewRegistry(Specs()...)
}

// Must is like New but panics on error.
func Must() *tools.Registry {
	return tools.MustRegistry(Specs()...)
}

var initialize = func() tools.Spec {
	s := tools.Define(InitializeTool,
		"Initialize the AnythingLLM client with API credentials",
		tools.Object(map[string]any{
			"apiKey":  tools.String("Your AnythingLLM API key"),
			"baseUrl": tools.String("AnythingLLM base URL (default: http://localhost:3001)"),
		}, "apiKey"),
		nil, "session")
	s.Initialize = true
	return s
}()

func slugProp() map[string]any {
	return tools.String("The workspace slug/identifier")
}
