// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for order/operand checks used by constructors and kernels.
//  - Return plain sentinels; call sites wrap with matrixErrorf.
//
// Note:
//  - Composite validators follow a fixed sequence (operand presence → order).

package matrix

import "github.com/katalvlaran/dynmat/sequence"

// validateOrder reports ErrInvalidSize unless 1 ≤ n ≤ MaxOrder.
func validateOrder(n int) error {
	if n <= 0 || n > MaxOrder {
		return ErrInvalidSize
	}

	return nil
}

// validateOperand rejects a nil matrix operand.
func validateOperand[T sequence.Number](m *Matrix[T]) error {
	if m == nil {
		return ErrInvalidArgument
	}

	return nil
}

// validateSameOrder – Composite: operand(b) → equal order.
// The receiver a is assumed non-nil.
func validateSameOrder[T sequence.Number](a, b *Matrix[T]) error {
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrLengthMismatch
	}

	return nil
}

// validateVecLen – Composite: vector presence → len(v) == order.
func validateVecLen[T sequence.Number](m *Matrix[T], v *sequence.Sequence[T]) error {
	if v == nil {
		return ErrInvalidArgument
	}
	if v.Size() != m.n {
		return ErrLengthMismatch
	}

	return nil
}

// validateSquare reports ErrLengthMismatch when any row no longer has
// exactly m.n elements (a row resized through the unchecked Row path).
func validateSquare[T sequence.Number](m *Matrix[T]) error {
	for _, r := range m.rows {
		if r.Size() != m.n {
			return ErrLengthMismatch
		}
	}

	return nil
}
