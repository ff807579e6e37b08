// SPDX-License-Identifier: MIT

package ring

import "golang.org/x/exp/constraints"

// Integer is the ring of machine integers of type T under wrapping
// arithmetic, i.e. the integers modulo 2^bits. Equality is exact.
// Unsigned types are rings too: Negative(x) is 2^bits - x.
type Integer[T constraints.Integer] struct{}

// Concrete integer rings.
type (
	Int   = Integer[int]
	Int64 = Integer[int64]
	Int32 = Integer[int32]
	Int16 = Integer[int16]
	Uint8 = Integer[uint8]
)

var _ Ring[int] = Int{}

func (Integer[T]) Equals(a, b T) bool { return a == b }
func (Integer[T]) Add(a, b T) T       { return a + b }
func (Integer[T]) Multiply(a, b T) T  { return a * b }
func (Integer[T]) Negative(a T) T     { return -a }
func (Integer[T]) Subtract(a, b T) T  { return a - b }
func (Integer[T]) Zero() T            { return 0 }
func (Integer[T]) One() T             { return 1 }
