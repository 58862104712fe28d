package catalog

import (
	"context"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

var listAgents = tools.Define("list_agents",
	"List all available agents",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.ListAgents(ctx)
	}, "agents")

var createAgent = tools.Define("create_agent",
	"Create a new agent",
	tools.Object(map[string]any{
		"name":         tools.String("Name of the agent"),
		"systemPrompt": tools.String("System prompt for the agent"),
		"tools":        tools.StringArray("List of tools the agent can use"),
	}, "name"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.CreateAgent(ctx, a.Pick("name", "systemPrompt", "tools"))
	}, "agents")

var updateAgent = tools.Define("update_agent",
	"Update an existing agent",
	tools.Object(map[string]any{
		"agentId": tools.String("ID of the agent to update"),
		"updates": tools.ObjectProp("Object containing fields to update"),
	}, "agentId", "updates"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateAgent(ctx, a.String("agentId"), a.Map("updates"))
	}, "agents")

var deleteAgent = tools.Define("delete_agent",
	"Delete an agent",
	tools.Object(map[string]any{"agentId": tools.String("ID of the agent to delete")}, "agentId"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.DeleteAgent(ctx, a.String("agentId"))
	}, "agents")

var invokeAgent = tools.Define("invoke_agent",
	"Invoke an agent with input",
	tools.Object(map[string]any{
		"agentId": tools.String("ID of the agent to invoke"),
		"input":   tools.String("Input to send to the agent"),
	}, "agentId", "input"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.InvokeAgent(ctx, a.String("agentId"), a.String("input"))
	}, "agents")
