// SPDX-License-Identifier: MIT

package ring

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the absolute tolerance used by Float and Complex128 in
// Equals.
const DefaultTolerance = 1e-4

// Float is the (approximate) ring of IEEE floating point numbers.
//
// Floating point addition is not associative and no equality can fix that
// while staying transitive, so Equals compares with the absolute tolerance
// DefaultTolerance. Prefer Decimal or BigRat where exactness matters.
type Float[T ~float32 | ~float64] struct{}

// Concrete floating point rings.
type (
	Float64 = Float[float64]
	Float32 = Float[float32]
)

var _ Ring[float64] = Float64{}

// Equals reports |a-b| <= DefaultTolerance; NaN equals nothing.
func (Float[T]) Equals(a, b T) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), DefaultTolerance)
}

func (Float[T]) Add(a, b T) T      { return a + b }
func (Float[T]) Multiply(a, b T) T { return a * b }
func (Float[T]) Negative(a T) T    { return -a }
func (Float[T]) Subtract(a, b T) T { return a - b }
func (Float[T]) Zero() T           { return 0 }
func (Float[T]) One() T            { return 1 }

// Complex128 is the ring of complex128 values with Equals on |a-b| within
// DefaultTolerance.
type Complex128 struct{}

var _ Ring[complex128] = Complex128{}

func (Complex128) Equals(a, b complex128) bool {
	if a == b {
		return true
	}

	return cmplx.Abs(a-b) <= DefaultTolerance
}

func (Complex128) Add(a, b complex128) complex128      { return a + b }
func (Complex128) Multiply(a, b complex128) complex128 { return a * b }
func (Complex128) Negative(a complex128) complex128    { return -a }
func (Complex128) Subtract(a, b complex128) complex128 { return a - b }
func (Complex128) Zero() complex128                    { return 0 }
func (Complex128) One() complex128                     { return 1 }
