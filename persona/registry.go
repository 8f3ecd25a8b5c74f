package persona

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Registry.Get for unknown persona ids.
var ErrNotFound = errors.New("persona not found")

// Registry holds an ordered, immutable set of personas. The order passed to
// NewRegistry defines the turn order within every discussion round and is
// stable across calls for the process lifetime. There is no mutation API:
// changing the participant set means building a new registry.
type Registry struct {
	ordered []Persona
	byID    map[string]Persona
}

// NewRegistry builds a registry from the given personas, preserving order.
func NewRegistry(personas []Persona) (*Registry, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("at least one persona is required")
	}

	byID := make(map[string]Persona, len(personas))
	ordered := make([]Persona, 0, len(personas))
	for _, p := range personas {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("persona %q: id is required", p.Name)
		}
		if _, exists := byID[id]; exists {
			return nil, fmt.Errorf("duplicate persona id: %s", id)
		}
		p.ID = id
		if strings.TrimSpace(p.Name) == "" {
			p.Name = id
		}
		byID[id] = p
		ordered = append(ordered, p)
	}

	return &Registry{ordered: ordered, byID: byID}, nil
}

// NewBuiltinRegistry builds a registry from the five builtin personas.
func NewBuiltinRegistry() *Registry {
	r, err := NewRegistry(Builtin())
	if err != nil {
		// Builtin definitions are static; this cannot happen.
		panic(err)
	}
	return r
}

// List returns the personas in registration order. The returned slice is a
// copy; callers cannot disturb the registry through it.
func (r *Registry) List() []Persona {
	out := make([]Persona, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get returns the persona with the given id.
func (r *Registry) Get(id string) (Persona, error) {
	p, ok := r.byID[id]
	if !ok {
		return Persona{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return p, nil
}

// Len returns the number of registered personas.
func (r *Registry) Len() int {
	return len(r.ordered)
}
