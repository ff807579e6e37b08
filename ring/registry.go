// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"reflect"

	logging "github.com/ipfs/go-log/v2"
	"github.com/puzpuzpuz/xsync"
)

var log = logging.Logger("ring")

// Definition bundles the ring operations for T as closures. Subtract is
// optional; when nil it is derived as Add(a, Negative(b)).
type Definition[T any] struct {
	Equals   func(a, b T) bool
	Add      func(a, b T) T
	Multiply func(a, b T) T
	Negative func(a T) T
	Subtract func(a, b T) T
	Zero     T
	One      T
}

// validate reports the first missing required closure.
func (d Definition[T]) validate() error {
	switch {
	case d.Equals == nil:
		return fmt.Errorf("Equals: %w", ErrIncompleteDefinition)
	case d.Add == nil:
		return fmt.Errorf("Add: %w", ErrIncompleteDefinition)
	case d.Multiply == nil:
		return fmt.Errorf("Multiply: %w", ErrIncompleteDefinition)
	case d.Negative == nil:
		return fmt.Errorf("Negative: %w", ErrIncompleteDefinition)
	}

	return nil
}

// withSubtract fills in the derived Subtract when the caller left it nil.
func (d Definition[T]) withSubtract() Definition[T] {
	if d.Subtract == nil {
		add, neg := d.Add, d.Negative
		d.Subtract = func(a, b T) T { return add(a, neg(b)) }
	}

	return d
}

// Registry maps a scalar type to its runtime ring Definition. Each type can be
// registered at most once for the lifetime of the Registry.
//
// The zero value is ready to use. A Registry must not be copied after first use.
type Registry struct {
	mu   xsync.RBMutex        // exclusive for check-and-set, reader tokens for lookups
	defs map[reflect.Type]any // reflect.Type of T -> *Definition[T]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[reflect.Type]any)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the zero value of Runtime.
func Default() *Registry { return defaultRegistry }

// typeKey identifies T, including interface types.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register stores def as the ring of T in reg.
// Implementation:
//   - Stage 1: validate the registry and the definition closures.
//   - Stage 2: under the exclusive lock, fail if T is present; else store.
//
// Errors:
//   - ErrNilRegistry, ErrIncompleteDefinition, ErrAlreadySet.
//
// Notes:
//   - The check and the store happen under one exclusive lock, so among
//     concurrent first registrations of T exactly one succeeds.
func Register[T any](reg *Registry, def Definition[T]) error {
	key := typeKey[T]()
	if reg == nil {
		return fmt.Errorf("Register[%v]: %w", key, ErrNilRegistry)
	}
	if err := def.validate(); err != nil {
		return fmt.Errorf("Register[%v]: %w", key, err)
	}
	stored := def.withSubtract()

	reg.mu.Lock()
	if reg.defs == nil {
		reg.defs = make(map[reflect.Type]any)
	}
	if _, ok := reg.defs[key]; ok {
		reg.mu.Unlock()
		log.Debugf("rejected second registration for %v", key)

		return fmt.Errorf("Register[%v]: %w", key, ErrAlreadySet)
	}
	reg.defs[key] = &stored
	reg.mu.Unlock()

	log.Debugf("registered ring operations for %v", key)

	return nil
}

// TrySetOperations registers def for T and reports whether it was stored.
// It returns false, changing nothing, when T is already registered or def is
// incomplete.
func TrySetOperations[T any](reg *Registry, def Definition[T]) bool {
	return Register(reg, def) == nil
}

// IsSet reports whether T has a registered Definition in reg.
func IsSet[T any](reg *Registry) bool {
	_, ok := load[T](reg)

	return ok
}

// Lookup returns the Definition registered for T.
//
// Errors:
//   - ErrNilRegistry, ErrUninitialized.
func Lookup[T any](reg *Registry) (Definition[T], error) {
	if reg == nil {
		return Definition[T]{}, fmt.Errorf("Lookup[%v]: %w", typeKey[T](), ErrNilRegistry)
	}
	def, ok := load[T](reg)
	if !ok {
		return Definition[T]{}, fmt.Errorf("Lookup[%v]: %w", typeKey[T](), ErrUninitialized)
	}

	return *def, nil
}

// Len returns the number of registered scalar types.
func (r *Registry) Len() int {
	tk := r.mu.RLock()
	n := len(r.defs)
	r.mu.RUnlock(tk)

	return n
}

// load fetches the stored definition under a reader token.
func load[T any](reg *Registry) (*Definition[T], bool) {
	if reg == nil {
		return nil, false
	}
	tk := reg.mu.RLock()
	v, ok := reg.defs[typeKey[T]()]
	reg.mu.RUnlock(tk)
	if !ok {
		return nil, false
	}

	return v.(*Definition[T]), true
}
