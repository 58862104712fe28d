package catalog

import (
	"context"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

var listWorkspaces = tools.Define("list_workspaces",
	"List all available workspaces in AnythingLLM",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.ListWorkspaces(ctx)
	}, "workspace")

var getWorkspace = tools.Define("get_workspace",
	"Get details of a specific workspace",
	tools.Object(map[string]any{"slug": slugProp()}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.GetWorkspace(ctx, a.String("slug"))
	}, "workspace")

var createWorkspace = tools.Define("create_workspace",
	"Create a new workspace",
	tools.Object(map[string]any{"name": tools.String("Name of the new workspace")}, "name"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.CreateWorkspace(ctx, a.String("name"))
	}, "workspace")

// updateWorkspace returns the workspace as stored after the update.
var updateWorkspace = tools.Define("update_workspace",
	"Update an existing workspace",
	tools.Object(map[string]any{
		"slug":    slugProp(),
		"updates": tools.ObjectProp("Object containing fields to update"),
	}, "slug", "updates"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		slug := a.String("slug")
		if _, err := c.UpdateWorkspace(ctx, slug, a.Map("updates")); err != nil {
			return nil, err
		}
		return c.GetWorkspace(ctx, slug)
	}, "workspace")

var deleteWorkspace = tools.Define("delete_workspace",
	"Delete a workspace",
	tools.Object(map[string]any{"slug": slugProp()}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.DeleteWorkspace(ctx, a.String("slug"))
	}, "workspace")

var getWorkspaceSettings = tools.Define("get_workspace_settings",
	"Get settings for a specific workspace",
	tools.Object(map[string]any{"slug": slugProp()}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.GetWorkspaceSettings(ctx, a.String("slug"))
	}, "workspace", "settings")

var updateWorkspaceSettings = tools.Define("update_workspace_settings",
	"Update settings for a specific workspace",
	tools.Object(map[string]any{
		"slug":     slugProp(),
		"settings": tools.ObjectProp("Settings object to update"),
	}, "slug", "settings"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateWorkspaceSettings(ctx, a.String("slug"), a.Map("settings"))
	}, "workspace", "settings")
