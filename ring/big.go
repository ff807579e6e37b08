// SPDX-License-Identifier: MIT

package ring

import "math/big"

// BigInt is the exact ring of arbitrary precision integers. Every operation
// allocates its result and never mutates an operand, so *big.Int values
// stored in immutable containers stay immutable.
type BigInt struct{}

var _ Ring[*big.Int] = BigInt{}

func (BigInt) Equals(a, b *big.Int) bool       { return a.Cmp(b) == 0 }
func (BigInt) Add(a, b *big.Int) *big.Int      { return new(big.Int).Add(a, b) }
func (BigInt) Multiply(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Negative(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) Subtract(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Zero() *big.Int                  { return new(big.Int) }
func (BigInt) One() *big.Int                   { return big.NewInt(1) }

// BigRat is the exact field of arbitrary precision rationals, used here
// through its ring operations only.
type BigRat struct{}

var _ Ring[*big.Rat] = BigRat{}

func (BigRat) Equals(a, b *big.Rat) bool       { return a.Cmp(b) == 0 }
func (BigRat) Add(a, b *big.Rat) *big.Rat      { return new(big.Rat).Add(a, b) }
func (BigRat) Multiply(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) Negative(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (BigRat) Subtract(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Zero() *big.Rat                  { return new(big.Rat) }
func (BigRat) One() *big.Rat                   { return big.NewRat(1, 1) }
