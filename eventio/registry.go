package eventio

import (
	"slices"
	"sync"
)

// GenericName is the name of objects whose type id is not registered.
const GenericName = "Object"

// Constructor wraps a generic node into a record kind.
type Constructor func(base *BaseObject) Object

type registryEntry struct {
	name string
	new  Constructor
}

// Registry maps type ids to record kinds. Lookups never fail: unknown ids
// produce a *BaseObject. The zero value is an empty registry. A Registry is
// safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint32]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint32]registryEntry)}
}

// DefaultRegistry returns a new registry holding History, CommandLine and
// ConfigLine.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeHistory, "History", func(b *BaseObject) Object {
		return &History{BaseObject: b}
	})
	r.Register(TypeCommandLine, "CommandLine", func(b *BaseObject) Object {
		return &CommandLine{TimestampedString{BaseObject: b}}
	})
	r.Register(TypeConfigLine, "ConfigLine", func(b *BaseObject) Object {
		return &ConfigLine{TimestampedString{BaseObject: b}}
	})
	return r
}

// Register adds or replaces the record kind for typ. A nil constructor
// registers a name only; such objects are plain *BaseObject values.
func (r *Registry) Register(typ uint32, name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[uint32]registryEntry)
	}
	r.entries[typ] = registryEntry{name: name, new: ctor}
}

// Name returns the registered name for typ, or GenericName.
func (r *Registry) Name(typ uint32) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[typ]; ok {
		return e.name
	}
	return GenericName
}

// Types returns the registered type ids in ascending order.
func (r *Registry) Types() []uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]uint32, 0, len(r.entries))
	for typ := range r.entries {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}

// New builds the most specific object known for the header.
func (r *Registry) New(address uint64, h Header) Object {
	r.mu.RLock()
	e, ok := r.entries[h.Type()]
	r.mu.RUnlock()

	if !ok {
		return NewBaseObject(GenericName, address, h)
	}
	base := NewBaseObject(e.name, address, h)
	if e.new == nil {
		return base
	}
	return e.new(base)
}
