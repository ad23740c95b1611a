package gameobject

import (
	"fmt"
	"sort"
)

// Registry maps component type names to schemas.
//
// Registration is expected at process startup, before any load runs.
// Lookups are safe from any number of goroutines once registration is
// done; Register itself is not synchronized against concurrent lookups.
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// NewBuiltinRegistry creates a registry holding the built-in component
// types (sprite, mesh, model, ...).
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinSchemas() {
		r.MustRegister(s.Name, s)
	}
	return r
}

var defaultRegistry = NewBuiltinRegistry()

// DefaultRegistry returns the process-wide registry used by Load and
// Decode when no registry is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds or replaces the schema for typeName. The schema is
// validated first; it must not be modified after registration.
func (r *Registry) Register(typeName string, schema *Schema) error {
	if typeName == "" {
		return fmt.Errorf("register: empty type name")
	}
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("register %s: %w", typeName, err)
	}
	schema.buildIndex()
	if schema.Hash == "" {
		schema.ComputeHash()
	}
	r.schemas[typeName] = schema
	return nil
}

// MustRegister is like Register but panics on an invalid schema.
func (r *Registry) MustRegister(typeName string, schema *Schema) {
	if err := r.Register(typeName, schema); err != nil {
		panic(err)
	}
}

// Lookup returns the schema for typeName, or an error wrapping ErrNotFound.
func (r *Registry) Lookup(typeName string) (*Schema, error) {
	if r != nil {
		if s, ok := r.schemas[typeName]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, typeName)
}

// Has reports whether typeName is registered.
func (r *Registry) Has(typeName string) bool {
	_, err := r.Lookup(typeName)
	return err == nil
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a registry with the same schemas, for callers that extend
// the built-in set without touching the process-wide registry.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for name, s := range r.schemas {
		c.schemas[name] = s
	}
	return c
}

// Register adds a schema to the default registry. Call it from init or
// main before loading documents.
func Register(typeName string, schema *Schema) error {
	return defaultRegistry.Register(typeName, schema)
}

// Lookup returns a schema from the default registry.
func Lookup(typeName string) (*Schema, error) {
	return defaultRegistry.Lookup(typeName)
}
