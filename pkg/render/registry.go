package render

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned for renderer names the registry does not hold.
var ErrNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to the builders that serve them.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds renderer under its Name(). Names are unique.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister is Register for init-time wiring; it panics on failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered as name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return renderer, nil
}

// MustGet is Get that panics on a missing renderer.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// Lookup resolves a user-supplied renderer name. Surrounding space and case
// are ignored, an empty name selects DefaultRenderer, and an unknown name
// reports the registered alternatives.
func (r *Registry) Lookup(name string) (Renderer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultRenderer
	}
	renderer, err := r.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(r.List(), ", "))
	}
	return renderer, nil
}

// Render merges fragments and substitutions with the renderer Lookup selects
// for name.
func (r *Registry) Render(ctx context.Context, name string, fragments []string, substitutions []any) ([]byte, error) {
	renderer, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, fragments, substitutions)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", renderer.Name(), err)
	}
	return out, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}
