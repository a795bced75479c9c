package collections

import (
	"fmt"
	"sort"
	"sync"
)

// typeRegistry is the package-level, goroutine-safe name → descriptor store
// used to resolve element types from configuration and documents.
var typeRegistry struct {
	mu    sync.RWMutex
	types map[string]ElementType
}

func init() {
	ResetTypes()
}

// builtinTypes lists the names registered by default. Both the Go spellings
// and the PHP gettype spellings ("integer", "double", "boolean") are
// accepted.
func builtinTypes() map[string]ElementType {
	return map[string]ElementType{
		"mixed":   Untyped,
		"string":  String,
		"int":     Int,
		"integer": Int,
		"int64":   Int64,
		"float64": Float64,
		"float":   Float64,
		"double":  Float64,
		"bool":    Bool,
		"boolean": Bool,
	}
}

// RegisterType adds a named element type to the global registry.
// If a type with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
//	collections.RegisterType("user", collections.TypeOf[User]())
//	elem, _ := collections.LookupType("user")
func RegisterType(name string, elem ElementType) {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()
	typeRegistry.types[name] = elem
}

// HasType reports whether a type with the given name is registered.
func HasType(name string) bool {
	typeRegistry.mu.RLock()
	defer typeRegistry.mu.RUnlock()
	_, ok := typeRegistry.types[name]
	return ok
}

// LookupType returns the element type registered under name.
// Returns [ErrUnknownType] if nothing is registered under name.
func LookupType(name string) (ElementType, error) {
	typeRegistry.mu.RLock()
	elem, ok := typeRegistry.types[name]
	typeRegistry.mu.RUnlock()
	if !ok {
		return Untyped, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return elem, nil
}

// TypeNames returns the registered names in sorted order.
func TypeNames() []string {
	typeRegistry.mu.RLock()
	defer typeRegistry.mu.RUnlock()
	names := make([]string, 0, len(typeRegistry.types))
	for name := range typeRegistry.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResetTypes restores the registry to the built-in names only.
// Intended for use in tests.
func ResetTypes() {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()
	typeRegistry.types = builtinTypes()
}
