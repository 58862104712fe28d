package catalog

import (
	"context"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

// System settings

var getSystemSettings = tools.Define("get_system_settings",
	"Get system settings",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.GetSystemSettings(ctx)
	}, "system", "settings")

var updateSystemSettings = tools.Define("update_system_settings",
	"Update system settings",
	tools.Object(map[string]any{"settings": tools.ObjectProp("Settings object to update")}, "settings"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateSystemSettings(ctx, a.Map("settings"))
	}, "system", "settings")

// Users

var listUsers = tools.Define("list_users",
	"List all users in the system",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.ListUsers(ctx)
	}, "users")

var createUser = tools.Define("create_user",
	"Create a new user",
	tools.Object(map[string]any{
		"username": tools.String("Username for the new user"),
		"password": tools.String("Password for the new user"),
		"role":     tools.String("User role (admin, user, etc.)"),
	}, "username", "password"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.CreateUser(ctx, a.Pick("username", "password", "role"))
	}, "users")

var updateUser = tools.Define("update_user",
	"Update an existing user",
	tools.Object(map[string]any{
		"userId":  tools.String("ID of the user to update"),
		"updates": tools.ObjectProp("Object containing fields to update"),
	}, "userId", "updates"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateUser(ctx, a.String("userId"), a.Map("updates"))
	}, "users")

var deleteUser = tools.Define("delete_user",
	"Delete a user",
	tools.Object(map[string]any{"userId": tools.String("ID of the user to delete")}, "userId"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.DeleteUser(ctx, a.String("userId"))
	}, "users")

// API keys

var listAPIKeys = tools.Define("list_api_keys",
	"List all API keys",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.ListAPIKeys(ctx)
	}, "api-keys")

var createAPIKey = tools.Define("create_api_key",
	"Create a new API key",
	tools.Object(map[string]any{"name": tools.String("Name for the API key")}, "name"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.CreateAPIKey(ctx, a.String("name"))
	}, "api-keys")

var deleteAPIKey = tools.Define("delete_api_key",
	"Delete an API key",
	tools.Object(map[string]any{"keyId": tools.String("ID of the API key to delete")}, "keyId"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.DeleteAPIKey(ctx, a.String("keyId"))
	}, "api-keys")

// System information

var getSystemInfo = tools.Define("get_system_info",
	"Get general system information",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.GetSystemInfo(ctx)
	}, "system")

var getSystemStats = tools.Define("get_system_stats",
	"Get system statistics",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.GetSystemStats(ctx)
	}, "system")

// LLM providers

var listLLMProviders = tools.Define("list_llm_providers",
	"List available LLM providers",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.ListLLMProviders(ctx)
	}, "system", "llm")

// updateLLMProvider forwards every argument other than provider as
// provider configuration.
var updateLLMProvider = tools.Define("update_llm_provider",
	"Update LLM provider configuration",
	tools.Object(map[string]any{
		"provider": tools.String("Provider name (openai, anthropic, etc.)"),
		"apiKey":   tools.String("API key for the provider"),
		"model":    tools.String("Model to use"),
	}, "provider"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateLLMProvider(ctx, a.String("provider"), a.Without("provider"))
	}, "system", "llm")

// Vector database

var getVectorDatabaseInfo = tools.Define("get_vector_database_info",
	"Get vector database configuration",
	tools.Object(nil),
	func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
		return c.GetVectorDatabaseInfo(ctx)
	}, "system", "vector-database")

// updateVectorDatabase sends only the config object; provider is
// descriptive.
var updateVectorDatabase = tools.Define("update_vector_database",
	"Update vector database configuration",
	tools.Object(map[string]any{
		"provider": tools.String("Vector database provider"),
		"config":   tools.ObjectProp("Configuration object for the provider"),
	}, "provider", "config"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.UpdateVectorDatabase(ctx, a.Map("config"))
	}, "system", "vector-database")
