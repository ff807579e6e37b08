// SPDX-License-Identifier: MIT
// Package dense: canonical validators.
//
// Purpose:
//   - Keep shape/nil/length checks in one place so every operation fails the
//     same way for the same violation.
//   - Return sentinel errors wrapped with a short tag; call sites add the
//     method context.
//
// Determinism & Performance:
//   - All checks are O(1) and allocate only on failure.

package dense

import (
	"fmt"
	"math"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilOperand reports a nil interface or a typed nil dense container.
func isNilOperand(x any) bool {
	if x == nil {
		return true
	}
	if n, ok := x.(nillable); ok {
		return n.isNil()
	}

	return false
}

// area returns rows*cols after checking both are non-negative and that the
// product fits in int.
// Complexity: O(1).
func area(rows, cols int) (int, error) {
	if rows < 0 {
		return 0, validatorErrorf(fmt.Sprintf("rows=%d", rows), ErrBadShape)
	}
	if cols < 0 {
		return 0, validatorErrorf(fmt.Sprintf("cols=%d", cols), ErrBadShape)
	}
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > math.MaxInt {
		return 0, validatorErrorf(fmt.Sprintf("%d*%d overflows int", rows, cols), ErrBadShape)
	}

	return int(lo), nil
}

// validateShape checks the area of rows×cols and that it equals n.
func validateShape(rows, cols, n int) error {
	a, err := area(rows, cols)
	if err != nil {
		return err
	}
	if a != n {
		return validatorErrorf(fmt.Sprintf("%d*%d != %d items", rows, cols, n), ErrBadShape)
	}

	return nil
}

// validateLength checks that a length is non-negative.
func validateLength(n int) error {
	if n < 0 {
		return validatorErrorf(fmt.Sprintf("length=%d", n), ErrBadShape)
	}

	return nil
}

// validateSameLen is the composite NotNil -> equal length check used by every
// binary vector operation. A zero-length vector only combines with another
// zero-length vector.
func validateSameLen[T any](n int, other Vec[T]) error {
	if isNilOperand(other) {
		return validatorErrorf("validateSameLen", ErrNilArgument)
	}
	if other.Len() != n {
		return validatorErrorf(fmt.Sprintf("len %d != %d", other.Len(), n), ErrDimensionMismatch)
	}

	return nil
}

// validateSameSize is NotNil -> equal RowCount -> equal ColumnCount.
func validateSameSize[T any](rows, cols int, other Grid[T]) error {
	if isNilOperand(other) {
		return validatorErrorf("validateSameSize", ErrNilArgument)
	}
	if other.RowCount() != rows {
		return validatorErrorf(fmt.Sprintf("rows %d != %d", other.RowCount(), rows), ErrDimensionMismatch)
	}
	if other.ColumnCount() != cols {
		return validatorErrorf(fmt.Sprintf("columns %d != %d", other.ColumnCount(), cols), ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible is NotNil -> cols == other.RowCount.
func validateMulCompatible[T any](cols int, other Grid[T]) error {
	if isNilOperand(other) {
		return validatorErrorf("validateMulCompatible", ErrNilArgument)
	}
	if other.RowCount() != cols {
		return validatorErrorf(fmt.Sprintf("inner %d != %d", cols, other.RowCount()), ErrDimensionMismatch)
	}

	return nil
}
