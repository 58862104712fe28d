// Package tools defines tool specifications and the ordered registry that
// holds them.
//
// A Spec pairs a protocol tool definition (name, title, description and
// JSON input schema) with a Handler that translates call arguments into
// connector calls:
//
//	spec := tools.Define("list_workspaces", "List all available workspaces",
//	    tools.Object(nil),
//	    func(ctx context.Context, c *anythingllm.Client, _ tools.Args) (any, error) {
//	        return c.ListWorkspaces(ctx)
//	    },
//	    "workspace",
//	)
//
// # Registry
//
// A Registry is built once from a fixed list of specs and is read-only
// afterwards. Names are unique, listing preserves declaration order, and
// at most one spec may be marked as the session initialization tool.
//
//	reg, err := tools.NewRegistry(specs...)
//	spec, ok := reg.Lookup("list_workspaces")
//
// The registry also keeps a tooldiscovery index for free-text search:
//
//	hits, _ := reg.Search("chat history", 5)
package tools
