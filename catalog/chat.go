package catalog

import (
	"context"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

func chatSchema() map[string]any {
	return tools.Object(map[string]any{
		"slug":    slugProp(),
		"message": tools.String("The message to send"),
		"mode":    tools.Enum("Chat mode (chat or query)", DefaultChatMode, "chat", "query"),
	}, "slug", "message")
}

var chatWithWorkspace = tools.Define("chat_with_workspace",
	"Send a chat message to a workspace",
	chatSchema(),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.ChatWithWorkspace(ctx, a.String("slug"), a.String("message"), a.StringOr("mode", DefaultChatMode))
	}, "chat")

// streamChatWithWorkspace reads the event stream to completion and returns
// the aggregated response.
var streamChatWithWorkspace = tools.Define("stream_chat_with_workspace",
	"Send a chat message to a workspace using the streaming endpoint and return the aggregated response",
	chatSchema(),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		body, err := c.StreamChatWithWorkspace(ctx, a.String("slug"), a.String("message"), a.StringOr("mode", DefaultChatMode))
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return anythingllm.ReadChatStream(body)
	}, "chat", "stream")

var getChatHistory = tools.Define("get_chat_history",
	"Get chat history for a workspace",
	tools.Object(map[string]any{
		"slug":  slugProp(),
		"limit": tools.Number("Maximum number of chats to return", DefaultHistoryLimit),
	}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.GetChatHistory(ctx, a.String("slug"), a.Or("limit", DefaultHistoryLimit))
	}, "chat", "history")

var clearChatHistory = tools.Define("clear_chat_history",
	"Clear all chat history for a workspace",
	tools.Object(map[string]any{"slug": slugProp()}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.ClearChatHistory(ctx, a.String("slug"))
	}, "chat", "history")

var searchWorkspace = tools.Define("search_workspace",
	"Search within a workspace",
	tools.Object(map[string]any{
		"slug":  slugProp(),
		"query": tools.String("Search query"),
		"limit": tools.Number("Maximum number of results", DefaultSearchLimit),
	}, "slug", "query"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.SearchWorkspace(ctx, a.String("slug"), a.String("query"), a.Or("limit", DefaultSearchLimit))
	}, "search")
