// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capability set that parameterizes every
// arithmetic operation in ringalg, together with ready-made rings for common
// scalar types and a set-once registry for rings defined at runtime.
//
// Capability ladder:
//
//	Equaler[T]        Equals(a, b) bool
//	Adder[T]          + Add(a, b) T                 (associative, commutative)
//	AdditiveMonoid[T] + Zero() T                    (Add(a, Zero()) ~ a)
//	AdditiveGroup[T]  + Negative(a) T, Subtract(a, b) T
//	Multiplier[T]     Multiply(a, b) T              (associative)
//	MultiplicativeMonoid[T] + One() T               (Multiply(a, One()) ~ a)
//	Ring[T]           AdditiveGroup[T] + MultiplicativeMonoid[T]
//
// where "~" means Equals. Distributivity of Multiply over Add is an obligation
// of the implementation and is never checked at runtime.
//
// Scalar rings:
//
//   - Integer[T] (Int, Int64, Int32, Int16, Uint8): exact, wrapping machine arithmetic.
//   - Float[T] (Float64, Float32): absolute tolerance DefaultTolerance in Equals.
//   - Complex128: tolerance on |a-b|.
//   - BigInt, BigRat, Decimal: exact arbitrary precision; operands are never mutated.
//   - Modular: integers modulo n, built with NewModular.
//
// Tolerance-based Equals is not transitive. Containers built over such rings
// inherit that caveat in their own Equals.
//
// Runtime rings:
//
// Some scalar types cannot carry a compile-time ring (third-party types, or
// built-in types that need a non-default ring). Register a Definition for the
// type once per Registry and use Runtime[T] as the ring:
//
//	ok := ring.TrySetOperations(ring.Default(), ring.Definition[int]{...})
//	var r ring.Runtime[int] // delegates to the Default registry
//
// Registration is set-once: later attempts for the same type report false and
// leave the first definition in place, also under concurrent first use.
package ring
