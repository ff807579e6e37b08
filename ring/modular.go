// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
)

// Modular is the ring Z/nZ of integers modulo n, with elements represented
// as *big.Int normalized into [0, n). It is a field when n is prime.
//
// Unlike the other rings Modular carries state and must be built with
// NewModular; its zero value is not usable.
type Modular struct {
	n *big.Int // modulus, >= 1, never mutated
}

var _ Ring[*big.Int] = Modular{}

// NewModular returns the ring of integers modulo n. n must be >= 1.
func NewModular(n *big.Int) (Modular, error) {
	if n == nil || n.Sign() <= 0 {
		return Modular{}, fmt.Errorf("NewModular(%v): %w", n, ErrInvalidModulus)
	}

	return Modular{n: new(big.Int).Set(n)}, nil
}

// Modulus returns a copy of n.
func (m Modular) Modulus() *big.Int { return new(big.Int).Set(m.n) }

// Element reduces x into [0, n).
func (m Modular) Element(x int64) *big.Int { return m.reduce(big.NewInt(x)) }

// reduce maps x into [0, n) in place and returns it. big.Int.Mod is the
// Euclidean modulus, so negative inputs land in range too.
func (m Modular) reduce(x *big.Int) *big.Int { return x.Mod(x, m.n) }

// Equals compares residues, so unreduced inputs such as n+1 and 1 are equal.
func (m Modular) Equals(a, b *big.Int) bool {
	d := new(big.Int).Sub(a, b)

	return m.reduce(d).Sign() == 0
}

func (m Modular) Add(a, b *big.Int) *big.Int      { return m.reduce(new(big.Int).Add(a, b)) }
func (m Modular) Multiply(a, b *big.Int) *big.Int { return m.reduce(new(big.Int).Mul(a, b)) }
func (m Modular) Negative(a *big.Int) *big.Int    { return m.reduce(new(big.Int).Neg(a)) }
func (m Modular) Subtract(a, b *big.Int) *big.Int { return m.reduce(new(big.Int).Sub(a, b)) }
func (m Modular) Zero() *big.Int                  { return new(big.Int) }

// One is 1 mod n, which is 0 in the trivial ring n == 1.
func (m Modular) One() *big.Int { return m.reduce(big.NewInt(1)) }
