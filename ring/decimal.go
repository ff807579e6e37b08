// SPDX-License-Identifier: MIT

package ring

import "github.com/shopspring/decimal"

// Decimal is the exact ring of arbitrary precision decimals. Equality is by
// value, so 1.0 and 1.00 are equal.
type Decimal struct{}

var _ Ring[decimal.Decimal] = Decimal{}

func (Decimal) Equals(a, b decimal.Decimal) bool              { return a.Equal(b) }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal      { return a.Add(b) }
func (Decimal) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Decimal) Negative(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (Decimal) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Zero() decimal.Decimal                         { return decimal.Zero }
func (Decimal) One() decimal.Decimal                          { return decimal.NewFromInt(1) }
