// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dense
// package. Operations return these sentinels wrapped with call-site context
// ("Type.Method(args): %w"); tests MUST check them via errors.Is.
// No exported operation panics on a shape, size or index violation.

package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned by constructors when the requested shape is
	// invalid: a negative row/column count or length, rows*cols overflowing
	// int, or an item count that does not equal rows*cols.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates an index outside [0, Len) / [0, RowCount) /
	// [0, ColumnCount).
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: vectors of
	// different lengths, matrices of different sizes, or a product where
	// a.ColumnCount != b.RowCount.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilArgument indicates a nil operand or callback.
	ErrNilArgument = errors.New("dense: nil argument")
)

// Dimension-specific bounds errors. Both satisfy errors.Is(err, ErrOutOfRange).
var (
	ErrRowOutOfRange    = fmt.Errorf("%w: row", ErrOutOfRange)
	ErrColumnOutOfRange = fmt.Errorf("%w: column", ErrOutOfRange)
)
