package factory

import (
	"sort"
	"sync"

	"github.com/objpath/objpath"
	"github.com/objpath/objpath/errors"
)

// Constructor builds one factory instance. It is invoked fresh on every
// load; constructors must not assume they run only once.
type Constructor func() (objpath.Factory, error)

// Registry maps implementation identifiers to their constructors. It is the
// replacement for reflective type-name loading: engine packages register
// themselves explicitly, and the instance loader only ever consults the
// registry. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor under the given identifier.
func (r *Registry) Register(name string, c Constructor) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseLoad, "identifier cannot be empty")
	}
	if c == nil {
		return errors.InvalidInput(errors.PhaseLoad, "constructor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; exists {
		return errors.Registration(name, "identifier already registered")
	}
	r.ctors[name] = c
	return nil
}

// MustRegister is like Register but panics on error. Intended for engine
// package init functions.
func (r *Registry) MustRegister(name string, c Constructor) {
	if err := r.Register(name, c); err != nil {
		panic("objpath factory registry: " + err.Error())
	}
}

// Lookup returns the constructor for the given identifier, or nil.
func (r *Registry) Lookup(name string) Constructor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctors[name]
}

// Names returns all registered identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry is the process-wide registry consulted by New.
var defaultRegistry = NewRegistry()

// Register adds a constructor to the process-wide registry.
func Register(name string, c Constructor) error {
	return defaultRegistry.Register(name, c)
}

// MustRegister adds a constructor to the process-wide registry, panicking
// on error.
func MustRegister(name string, c Constructor) {
	defaultRegistry.MustRegister(name, c)
}

// Lookup returns the constructor registered process-wide for name, or nil.
func Lookup(name string) Constructor {
	return defaultRegistry.Lookup(name)
}

// Names returns all identifiers registered process-wide in sorted order.
func Names() []string {
	return defaultRegistry.Names()
}
