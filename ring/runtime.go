// SPDX-License-Identifier: MIT

package ring

import "fmt"

// Runtime is the ring of T whose operations are looked up in a Registry on
// every call. The zero value uses Default(); NewRuntime binds another registry.
//
// Calling any operation before a Definition for T was registered panics with
// an error wrapping ErrUninitialized. Callers that want an error instead check
// IsSet or call Lookup first.
type Runtime[T any] struct {
	reg *Registry
}

var _ Ring[int] = Runtime[int]{}

// NewRuntime returns a runtime ring backed by reg.
func NewRuntime[T any](reg *Registry) Runtime[T] { return Runtime[T]{reg: reg} }

// Registry returns the registry the ring reads from.
func (r Runtime[T]) Registry() *Registry {
	if r.reg == nil {
		return defaultRegistry
	}

	return r.reg
}

// IsSet reports whether the bound registry holds a Definition for T.
func (r Runtime[T]) IsSet() bool { return IsSet[T](r.Registry()) }

// ops returns the registered definition or panics with ErrUninitialized.
func (r Runtime[T]) ops() *Definition[T] {
	def, ok := load[T](r.Registry())
	if !ok {
		panic(fmt.Errorf("Runtime[%v]: %w", typeKey[T](), ErrUninitialized))
	}

	return def
}

func (r Runtime[T]) Equals(a, b T) bool { return r.ops().Equals(a, b) }
func (r Runtime[T]) Add(a, b T) T       { return r.ops().Add(a, b) }
func (r Runtime[T]) Multiply(a, b T) T  { return r.ops().Multiply(a, b) }
func (r Runtime[T]) Negative(a T) T     { return r.ops().Negative(a) }
func (r Runtime[T]) Subtract(a, b T) T  { return r.ops().Subtract(a, b) }
func (r Runtime[T]) Zero() T            { return r.ops().Zero }
func (r Runtime[T]) One() T             { return r.ops().One }
