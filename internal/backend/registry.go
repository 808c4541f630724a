package backend

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Factory constructs a backend. The logger is already named for the backend.
type Factory func(logger hclog.Logger) (Backend, error)

// Registry maps backend names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    hclog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger handed to backend factories.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns a registry with the built-in material backend.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register(MaterialName, func(logger hclog.Logger) (Backend, error) {
		return NewMaterial(WithMaterialLogger(logger)), nil
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Resolve constructs the backend registered under name.
func (r *Registry) Resolve(name string) (Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, r.Names())
	}

	b, err := factory(r.logger.Named(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create backend %q: %w", name, err)
	}
	return b, nil
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}
