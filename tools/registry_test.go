package tools

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
)

func noop(_ context.Context, _ *anythingllm.Client, _ Args) (any, error) {
	return nil, nil
}

func initSpec() Spec {
	s := Define("initialize_anythingllm", "Initialize", Object(map[string]any{
		"apiKey": String("key"),
	}, "apiKey"), nil)
	s.Initialize = true
	return s
}

func TestNewRegistry_Order(t *testing.T) {
	r, err := NewRegistry(
		initSpec(),
		Define("list_workspaces", "List workspaces", Object(nil), noop, "workspace"),
		Define("get_workspace", "Get a workspace", Object(map[string]any{"slug": String("slug")}, "slug"), noop),
		Define("a_last", "Sorted first alphabetically", Object(nil), noop),
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	want := []string{"initialize_anythingllm", "list_workspaces", "get_workspace", "a_last"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	// Stable across calls.
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() second call = %v, want %v", got, want)
	}

	list := r.List()
	if len(list) != 4 {
		t.Fatalf("List() returned %d specs, want 4", len(list))
	}
	for i, s := range list {
		if s.Name() != want[i] {
			t.Errorf("List()[%d].Name() = %q, want %q", i, s.Name(), want[i])
		}
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	if r.InitializeTool() != "initialize_anythingllm" {
		t.Errorf("InitializeTool() = %q, want %q", r.InitializeTool(), "initialize_anythingllm")
	}
}

func TestNewRegistry_ListIsCopy(t *testing.T) {
	r := MustRegistry(Define("list_workspaces", "List", Object(nil), noop))
	list := r.List()
	list[0] = Spec{}
	if got, _ := r.Lookup("list_workspaces"); got.Name() != "list_workspaces" {
		t.Error("mutating List() result changed the registry")
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(
		Define("list_workspaces", "List", Object(nil), noop),
		Define("list_workspaces", "List again", Object(nil), noop),
	)
	if !errors.Is(err, ErrToolExists) {
		t.Errorf("NewRegistry() duplicate error = %v, want %v", err, ErrToolExists)
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  error
	}{
		{"empty name", []Spec{Define("", "x", Object(nil), noop)}, ErrNameRequired},
		{"missing handler", []Spec{Define("list_users", "x", Object(nil), nil)}, ErrHandlerRequired},
		{"bad schema", []Spec{Define("list_users", "x", map[string]any{"type": "string"}, noop)}, ErrInvalidSchema},
		{"two init tools", []Spec{initSpec(), func() Spec {
			s := initSpec()
			s.Tool.Name = "initialize_again"
			return s
		}()}, ErrMultipleInitTools},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.specs...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustRegistry_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegistry() did not panic on duplicate names")
		}
	}()
	MustRegistry(
		Define("list_users", "x", Object(nil), noop),
		Define("list_users", "x", Object(nil), noop),
	)
}

func TestRegistry_Lookup(t *testing.T) {
	r := MustRegistry(Define("list_users", "List users", Object(nil), noop, "users"))

	s, ok := r.Lookup("list_users")
	if !ok {
		t.Fatal("Lookup() returned false")
	}
	if s.Description() != "List users" {
		t.Errorf("Description() = %q, want %q", s.Description(), "List users")
	}
	if s.Tool.Namespace != Namespace {
		t.Errorf("Namespace = %q, want %q", s.Tool.Namespace, Namespace)
	}
	if s.MCPTool().Title != "List Users" {
		t.Errorf("MCPTool().Title = %q, want %q", s.MCPTool().Title, "List Users")
	}

	if _, ok := r.Lookup("nonexistent"); ok {
		t.Error("Lookup() should return false for nonexistent tool")
	}
}

func TestRegistry_Search(t *testing.T) {
	r := MustRegistry(
		Define("list_workspaces", "List all available workspaces", Object(nil), noop, "workspace"),
		Define("list_users", "List all users in the system", Object(nil), noop, "users"),
	)

	results, err := r.Search("workspaces", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	found := false
	for _, s := range results {
		if s.Name == "list_workspaces" {
			found = true
		}
	}
	if !found {
		t.Errorf("Search(%q) = %v, want list_workspaces among results", "workspaces", results)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("get_chat_history"); got != "Get Chat History" {
		t.Errorf("Title() = %q, want %q", got, "Get Chat History")
	}
}

func TestRequired(t *testing.T) {
	schema := Object(map[string]any{"a": String("a"), "b": String("b")}, "a", "b")
	if got := Required(schema); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Required() = %v, want [a b]", got)
	}
	if got := Required(Object(nil)); got != nil {
		t.Errorf("Required() = %v, want nil", got)
	}
}
