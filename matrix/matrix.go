// SPDX-License-Identifier: MIT

// Package matrix - construction and ownership (copy/move/swap).
//
// Purpose:
//   - Build square matrices row by row from sequence.New / sequence.FromSlice.
//   - Deep copy on Clone/Assign, O(1) ownership transfer on Move/MoveFrom/Swap.
//
// Complexity quicksheet:
//   - New/FromRows/Clone/Assign: O(n²). Move/MoveFrom/Swap/Order: O(1).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/sequence"
)

// New creates an n×n zero matrix.
// Implementation:
//   - Stage 1: validate 1 ≤ n ≤ MaxOrder; else ErrInvalidSize.
//   - Stage 2: allocate n rows, each a zero Sequence of length n.
//
// Errors:
//   - ErrInvalidSize (order contract), ErrAllocationFailure (row storage).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T sequence.Number](n int) (*Matrix[T], error) {
	if err := validateOrder(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	rows := make([]*sequence.Sequence[T], n)
	for i := range rows {
		row, err := sequence.New[T](n)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{n: n, rows: rows}, nil
}

// FromRows builds a matrix from a square literal, copying every row.
//
// Errors:
//   - ErrInvalidSize for nil/empty input or an order above MaxOrder.
//   - ErrLengthMismatch when any row length differs from len(rows).
func FromRows[T sequence.Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := validateOrder(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	out := &Matrix[T]{n: n, rows: make([]*sequence.Sequence[T], n)}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w",
				opFromRows, i, len(r), n, ErrLengthMismatch)
		}
		row, err := sequence.FromSlice(r, n)
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		out.rows[i] = row
	}

	return out, nil
}

// Order returns the number of rows (== columns). A moved-from matrix reports 0.
func (m *Matrix[T]) Order() int { return m.n }

// Size is an alias of Order, matching sequence.Sequence.Size.
func (m *Matrix[T]) Size() int { return m.n }

// Clone returns a deep copy; every row gets its own storage.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{n: m.n}
	if m.rows != nil {
		out.rows = make([]*sequence.Sequence[T], len(m.rows))
		for i, r := range m.rows {
			out.rows[i] = r.Clone()
		}
	}

	return out
}

// Assign replaces the receiver with a deep copy of src (order may change).
// Self-assignment is a no-op. The copy is built first and swapped in, so the
// receiver is untouched if anything fails.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := validateOperand(src); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.Swap(tmp)

	return nil
}

// Move transfers all rows into a new Matrix in O(1); the receiver is left
// with order 0 and no rows.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{}
	out.Swap(m)

	return out
}

// MoveFrom takes ownership of src's rows, releasing the receiver's previous
// rows. src is left empty. Self-move is a no-op.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if err := validateOperand(src); err != nil {
		return matrixErrorf(opMoveFrom, err)
	}
	if m == src {
		return nil
	}
	m.n, m.rows = 0, nil
	m.Swap(src)

	return nil
}

// Swap exchanges order and rows with other without copying elements.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	m.n, other.n = other.n, m.n
	m.rows, other.rows = other.rows, m.rows
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T sequence.Number](a, b *Matrix[T]) { a.Swap(b) }
