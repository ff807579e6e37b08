// SPDX-License-Identifier: MIT

package ring

// Equaler decides equality of two scalars. Equals must be reflexive and
// symmetric; exact rings are also transitive, tolerant rings are not.
type Equaler[T any] interface {
	Equals(a, b T) bool
}

// Adder adds two scalars. Add must be associative and commutative.
type Adder[T any] interface {
	Equaler[T]
	Add(a, b T) T
}

// AdditiveMonoid adds the additive identity.
type AdditiveMonoid[T any] interface {
	Adder[T]
	Zero() T
}

// AdditiveGroup adds additive inverses.
// Subtract(a, b) must equal Add(a, Negative(b)).
type AdditiveGroup[T any] interface {
	AdditiveMonoid[T]
	Negative(a T) T
	Subtract(a, b T) T
}

// Multiplier multiplies two scalars. Multiply must be associative; it need not
// be commutative.
type Multiplier[T any] interface {
	Multiply(a, b T) T
}

// MultiplicativeMonoid adds the multiplicative identity.
type MultiplicativeMonoid[T any] interface {
	Multiplier[T]
	One() T
}

// Ring is the full capability set a scalar type needs to take part in vector
// and matrix arithmetic.
type Ring[T any] interface {
	AdditiveGroup[T]
	MultiplicativeMonoid[T]
}

// Sum folds xs with Add from Zero, in index order.
func Sum[T any](r AdditiveMonoid[T], xs ...T) T {
	acc := r.Zero()
	for _, x := range xs {
		acc = r.Add(acc, x)
	}

	return acc
}

// Product folds xs with Multiply from One, in index order. The order matters
// for non-commutative rings.
func Product[T any](r MultiplicativeMonoid[T], xs ...T) T {
	acc := r.One()
	for _, x := range xs {
		acc = r.Multiply(acc, x)
	}

	return acc
}

// Dot returns Σ Multiply(a[i], b[i]) folded with Add from Zero over the common
// prefix of a and b. Callers that need strict length checks use the dense
// containers, which reject mismatched operands.
func Dot[T any](r Ring[T], a, b []T) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	acc := r.Zero()
	for i := 0; i < n; i++ {
		acc = r.Add(acc, r.Multiply(a[i], b[i]))
	}

	return acc
}

// Pow returns x multiplied by itself n times (One when n <= 0) using
// square-and-multiply. Every factor is x, so the result does not depend on
// commutativity.
func Pow[T any](r MultiplicativeMonoid[T], x T, n int) T {
	acc := r.One()
	for n > 0 {
		if n&1 == 1 {
			acc = r.Multiply(acc, x)
		}
		x = r.Multiply(x, x)
		n >>= 1
	}

	return acc
}
