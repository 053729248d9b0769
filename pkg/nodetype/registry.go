package nodetype

import (
	"sync"

	"github.com/weavegraph/weave/pkg/paramtype"
)

// entry pairs a kind's static descriptor with the factory that builds its
// executor.
type entry struct {
	descriptor Descriptor
	factory    Factory
}

// Registry is the process-wide authority mapping a node kind string to its
// Descriptor and Factory.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty node type registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a descriptor/factory pair for descriptor.Kind. Returns an
// error if that kind is already registered.
func (r *Registry) Register(descriptor Descriptor, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[descriptor.Kind]; exists {
		return ErrDuplicateKind(descriptor.Kind)
	}
	r.entries[descriptor.Kind] = entry{descriptor: descriptor, factory: factory}
	return nil
}

// MustRegister registers a descriptor/factory pair and panics on error.
func (r *Registry) MustRegister(descriptor Descriptor, factory Factory) {
	if err := r.Register(descriptor, factory); err != nil {
		panic(err)
	}
}

// Descriptor returns the static descriptor for kind.
func (r *Registry) Descriptor(kind string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[kind]
	return e.descriptor, ok
}

// NewExecutor builds a fresh Executor for kind via its registered factory.
func (r *Registry) NewExecutor(kind string, nodeID string, config map[string]paramtype.Value) (Executor, error) {
	r.mu.RLock()
	e, ok := r.entries[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownKind(kind)
	}
	return e.factory(nodeID, config)
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[kind]
	return ok
}

// ListKinds returns every registered node kind.
func (r *Registry) ListKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	return kinds
}
