package anythingllm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// apiPrefix is the versioned path prefix of the developer API.
const apiPrefix = "/api/v1"

func workspacePath(slug string, rest ...string) string {
	p := apiPrefix + "/workspace/" + url.PathEscape(slug)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

// Workspaces

func (c *Client) ListWorkspaces(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/workspaces", nil)
}

func (c *Client) GetWorkspace(ctx context.Context, slug string) (any, error) {
	return c.Do(ctx, http.MethodGet, workspacePath(slug), nil)
}

func (c *Client) CreateWorkspace(ctx context.Context, name string) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/workspace/new", map[string]any{"name": name})
}

func (c *Client) UpdateWorkspace(ctx context.Context, slug string, updates map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "update"), orEmpty(updates))
}

func (c *Client) DeleteWorkspace(ctx context.Context, slug string) (any, error) {
	return c.Do(ctx, http.MethodDelete, workspacePath(slug), nil)
}

// Chat

// ChatWithWorkspace sends a message in the given mode ("chat" or "query").
func (c *Client) ChatWithWorkspace(ctx context.Context, slug, message, mode string) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "chat"), map[string]any{
		"message": message,
		"mode":    mode,
	})
}

// StreamChatWithWorkspace opens the stream-chat endpoint and returns the raw
// event stream. The caller must close it; see ReadChatStream.
func (c *Client) StreamChatWithWorkspace(ctx context.Context, slug, message, mode string) (io.ReadCloser, error) {
	return c.Stream(ctx, workspacePath(slug, "stream-chat"), map[string]any{
		"message": message,
		"mode":    mode,
	})
}

// Documents

func (c *Client) UploadDocument(ctx context.Context, slug, filename string, content io.Reader) (any, error) {
	return c.Upload(ctx, workspacePath(slug, "upload"), filename, content)
}

func (c *Client) ListDocuments(ctx context.Context, slug string) (any, error) {
	return c.Do(ctx, http.MethodGet, workspacePath(slug, "documents"), nil)
}

func (c *Client) DeleteDocument(ctx context.Context, slug, documentID string) (any, error) {
	return c.Do(ctx, http.MethodDelete, workspacePath(slug, "document", url.PathEscape(documentID)), nil)
}

func (c *Client) ProcessDocument(ctx context.Context, slug, documentURL string) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "process-document"), map[string]any{"url": documentURL})
}

func (c *Client) GetDocumentVectors(ctx context.Context, slug, documentID string) (any, error) {
	return c.Do(ctx, http.MethodGet, workspacePath(slug, "document", url.PathEscape(documentID), "vectors"), nil)
}

// System settings

func (c *Client) GetSystemSettings(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/system/settings", nil)
}

func (c *Client) UpdateSystemSettings(ctx context.Context, settings map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/system/settings", orEmpty(settings))
}

// Users

func (c *Client) ListUsers(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/users", nil)
}

func (c *Client) CreateUser(ctx context.Context, user map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/users/new", orEmpty(user))
}

func (c *Client) UpdateUser(ctx context.Context, userID string, updates map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/users/"+url.PathEscape(userID), orEmpty(updates))
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (any, error) {
	return c.Do(ctx, http.MethodDelete, apiPrefix+"/users/"+url.PathEscape(userID), nil)
}

// API keys

func (c *Client) ListAPIKeys(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/api-keys", nil)
}

func (c *Client) CreateAPIKey(ctx context.Context, name string) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/api-key/new", map[string]any{"name": name})
}

func (c *Client) DeleteAPIKey(ctx context.Context, keyID string) (any, error) {
	return c.Do(ctx, http.MethodDelete, apiPrefix+"/api-key/"+url.PathEscape(keyID), nil)
}

// Embeddings

func (c *Client) EmbedText(ctx context.Context, slug string, texts []string) (any, error) {
	if texts == nil {
		texts = []string{}
	}
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "embed"), map[string]any{"texts": texts})
}

func (c *Client) EmbedWebpage(ctx context.Context, slug, pageURL string) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "embed-webpage"), map[string]any{"url": pageURL})
}

// Chat history

// GetChatHistory lists chats of a workspace. limit is sent as given.
func (c *Client) GetChatHistory(ctx context.Context, slug string, limit any) (any, error) {
	q := url.Values{"limit": {fmt.Sprint(limit)}}
	return c.Do(ctx, http.MethodGet, workspacePath(slug, "chats")+"?"+q.Encode(), nil)
}

func (c *Client) ClearChatHistory(ctx context.Context, slug string) (any, error) {
	return c.Do(ctx, http.MethodDelete, workspacePath(slug, "chats"), nil)
}

// System information

func (c *Client) GetSystemInfo(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/system", nil)
}

func (c *Client) GetSystemStats(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/system/stats", nil)
}

// LLM providers

func (c *Client) ListLLMProviders(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/system/llm-providers", nil)
}

// UpdateLLMProvider posts the provider name merged with its configuration.
func (c *Client) UpdateLLMProvider(ctx context.Context, provider string, config map[string]any) (any, error) {
	body := make(map[string]any, len(config)+1)
	body["provider"] = provider
	for k, v := range config {
		body[k] = v
	}
	return c.Do(ctx, http.MethodPost, apiPrefix+"/system/llm-provider", body)
}

// Vector database

func (c *Client) GetVectorDatabaseInfo(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/system/vector-database", nil)
}

func (c *Client) UpdateVectorDatabase(ctx context.Context, config map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/system/vector-database", orEmpty(config))
}

// Workspace settings

func (c *Client) GetWorkspaceSettings(ctx context.Context, slug string) (any, error) {
	return c.Do(ctx, http.MethodGet, workspacePath(slug, "settings"), nil)
}

func (c *Client) UpdateWorkspaceSettings(ctx context.Context, slug string, settings map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "settings"), orEmpty(settings))
}

// Search

func (c *Client) SearchWorkspace(ctx context.Context, slug, query string, limit any) (any, error) {
	return c.Do(ctx, http.MethodPost, workspacePath(slug, "search"), map[string]any{
		"query": query,
		"limit": limit,
	})
}

// Agents

func (c *Client) ListAgents(ctx context.Context) (any, error) {
	return c.Do(ctx, http.MethodGet, apiPrefix+"/agents", nil)
}

func (c *Client) CreateAgent(ctx context.Context, agent map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/agents/new", orEmpty(agent))
}

func (c *Client) UpdateAgent(ctx context.Context, agentID string, updates map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/agents/"+url.PathEscape(agentID), orEmpty(updates))
}

func (c *Client) DeleteAgent(ctx context.Context, agentID string) (any, error) {
	return c.Do(ctx, http.MethodDelete, apiPrefix+"/agents/"+url.PathEscape(agentID), nil)
}

func (c *Client) InvokeAgent(ctx context.Context, agentID, input string) (any, error) {
	return c.Do(ctx, http.MethodPost, apiPrefix+"/agents/"+url.PathEscape(agentID)+"/invoke", map[string]any{"input": input})
}

// orEmpty keeps POST bodies well-formed JSON objects when a caller omits them.
func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
