package schema

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Registry caches schemas per struct type.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]*Schema
}

// DefaultRegistry backs Of, For and Bind.
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[reflect.Type]*Schema)}
}

// Register builds the schema of t unless it is already known. It is idempotent.
func (r *Registry) Register(t reflect.Type) (*Schema, error) {
	if s, ok := r.Lookup(t); ok {
		return s, nil
	}

	s, err := build(t)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// a concurrent Register may have won, keep a single instance per type
	if existing, ok := r.schemas[t]; ok {
		return existing, nil
	}

	r.schemas[t] = s

	return s, nil
}

func (r *Registry) Lookup(t reflect.Type) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[t]

	return s, ok
}

// Entries returns a snapshot of the registered schemas ordered by type name.
func (r *Registry) Entries() []*Schema {
	r.mu.RLock()
	res := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		res = append(res, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(res, func(a, b *Schema) int {
		return strings.Compare(a.Type.String(), b.Type.String())
	})

	return res
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.schemas)
}

func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.schemas)
}

// Of returns the schema of the struct type t from DefaultRegistry.
func Of(t reflect.Type) (*Schema, error) {
	return DefaultRegistry.Register(t)
}

func For[T any]() (*Schema, error) {
	return Of(reflect.TypeFor[T]())
}
