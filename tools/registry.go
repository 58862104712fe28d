package tools

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/toolfoundation/model"
)

// Errors returned by NewRegistry.
var (
	ErrToolExists        = errors.New("tool already registered")
	ErrNameRequired      = errors.New("tool name is required")
	ErrHandlerRequired   = errors.New("tool handler is required")
	ErrInvalidSchema     = errors.New("tool input schema must have type \"object\"")
	ErrMultipleInitTools = errors.New("only one initialize tool may be registered")
)

// Registry is an immutable, ordered set of tool specs.
// It is safe for concurrent use because it is never modified after
// construction.
type Registry struct {
	specs  []Spec
	byName map[string]int
	init   string
	index  index.Index
}

// NewRegistry validates specs and builds a registry that preserves
// declaration order.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{
		specs:  make([]Spec, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	idx := index.NewInMemoryIndex()

	for _, s := range specs {
		name := s.Name()
		if name == "" {
			return nil, ErrNameRequired
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrToolExists, name)
		}
		if !objectSchema(s.InputSchema()) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSchema, name)
		}
		if s.Initialize {
			if r.init != "" {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleInitTools, r.init, name)
			}
			r.init = name
		} else if s.Handler == nil {
			return nil, fmt.Errorf("%w: %s", ErrHandlerRequired, name)
		}
		if s.Tool.Namespace == "" {
			s.Tool.Namespace = Namespace
		}
		if err := idx.RegisterTool(s.Tool, model.NewLocalBackend(name)); err != nil {
			return nil, fmt.Errorf("index tool %s: %w", name, err)
		}

		r.byName[name] = len(r.specs)
		r.specs = append(r.specs, s)
	}

	r.index = idx
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// It is intended for static tool sets defined at build time.
func MustRegistry(specs ...Spec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// List returns all specs in declaration order.
// The returned slice is a caller-owned copy.
func (r *Registry) List() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Names returns tool names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.specs))
	for i, s := range r.specs {
		out[i] = s.Name()
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.specs)
}

// InitializeTool returns the name of the initialize tool, or "" if none.
func (r *Registry) InitializeTool() string {
	return r.init
}

// Search finds tools matching a free-text query.
func (r *Registry) Search(query string, limit int) ([]index.Summary, error) {
	return r.index.Search(query, limit)
}

func objectSchema(schema any) bool {
	m, ok := schema.(map[string]any)
	if !ok {
		return false
	}
	return m["type"] == "object"
}
