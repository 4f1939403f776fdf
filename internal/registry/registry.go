// Package registry maps check kinds to the factories that build them. A Registry is an explicit value that is handed
// to whoever needs to build checks; there is no package-level registry.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/rwx-research/hookcheck/internal/check"
	"github.com/rwx-research/hookcheck/internal/errors"
)

// Definition describes a single configured check.
type Definition struct {
	Name             string
	Kind             string
	Command          string
	WorkingDirectory string
	Environment      map[string]string
	Timeout          time.Duration
}

// Factory builds a check from its definition.
type Factory func(Definition) (check.Check, error)

// Registry holds the known check kinds.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a new kind. Registering the same kind twice is a programming error.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.NewInternalError("unable to register a check kind without a name")
	}

	if factory == nil {
		return errors.NewInternalError("unable to register check kind %q without a factory", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[kind]; ok {
		return errors.NewInternalError("check kind %q is already registered", kind)
	}

	r.factories[kind] = factory
	return nil
}

// Build returns the check described by `def`.
func (r *Registry) Build(def Definition) (check.Check, error) {
	r.mu.RLock()
	factory, ok := r.factories[def.Kind]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewConfigurationError(
			"check %q has unknown kind %q (known kinds: %v)", def.Name, def.Kind, r.Kinds(),
		)
	}

	c, err := factory(def)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to build check %q", def.Name)
	}

	return c, nil
}

// Kinds returns the registered kinds in alphabetical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}
