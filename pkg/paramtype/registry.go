package paramtype

import "sync"

// Registry is the process-wide authority mapping a Kind to its Codec. It is
// populated once during an initialization phase and is read-only for the
// lifetime of any Scheduler built against it.
type Registry struct {
	mu     sync.RWMutex
	codecs map[Kind]Codec
}

// NewRegistry creates an empty parameter-kind registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[Kind]Codec)}
}

// Register adds a codec for kind. Returns an error if kind is already
// registered.
func (r *Registry) Register(kind Kind, codec Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codecs[kind]; exists {
		return ErrDuplicateKind(kind)
	}
	r.codecs[kind] = codec
	return nil
}

// MustRegister registers a codec and panics on error. Used during the
// read-only-after-init registration phase.
func (r *Registry) MustRegister(kind Kind, codec Codec) {
	if err := r.Register(kind, codec); err != nil {
		panic(err)
	}
}

// Get returns the codec registered for kind, or false if none exists.
func (r *Registry) Get(kind Kind) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[kind]
	return c, ok
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind Kind) bool {
	_, ok := r.Get(kind)
	return ok
}

// Validate validates value against kind's registered codec.
func (r *Registry) Validate(kind Kind, value any) error {
	codec, ok := r.Get(kind)
	if !ok {
		return ErrUnknownKind(kind)
	}
	return codec.Validate(value)
}

// Serialize dispatches to kind's registered codec.
func (r *Registry) Serialize(kind Kind, value any) (any, error) {
	codec, ok := r.Get(kind)
	if !ok {
		return nil, ErrUnknownKind(kind)
	}
	return codec.Serialize(value)
}

// Deserialize dispatches to kind's registered codec.
func (r *Registry) Deserialize(kind Kind, wire any) (any, error) {
	codec, ok := r.Get(kind)
	if !ok {
		return nil, ErrUnknownKind(kind)
	}
	return codec.Deserialize(wire)
}

// DefaultValue returns kind's canonical empty value.
func (r *Registry) DefaultValue(kind Kind) (any, error) {
	codec, ok := r.Get(kind)
	if !ok {
		return nil, ErrUnknownKind(kind)
	}
	return codec.Default(), nil
}

// ListKinds returns every registered kind.
func (r *Registry) ListKinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.codecs))
	for k := range r.codecs {
		kinds = append(kinds, k)
	}
	return kinds
}
