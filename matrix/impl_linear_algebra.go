// SPDX-License-Identifier: MIT
// Package matrix provides the 2-D arithmetic of square matrices: scalar
// multiply, matrix×vector, elementwise add/subtract and matrix×matrix.
// Every kernel is expressed through row Sequence operations (MulScalar,
// Dot, Add, Sub) and performs strict fail-fast validation.
//
// Determinism & Performance:
//   - Fixed loop orders; one allocation for the result (plus one column
//     scratch Sequence in Mul).
//   - Operands are never mutated and never share storage with the result.

package matrix

import "github.com/katalvlaran/dynmat/sequence"

// MulScalar returns a new matrix with every element multiplied by k.
// Each row delegates to Sequence.MulScalar.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(k T) *Matrix[T] {
	out := &Matrix[T]{n: m.n, rows: make([]*sequence.Sequence[T], len(m.rows))}
	for i, r := range m.rows {
		out.rows[i] = r.MulScalar(k)
	}

	return out
}

// MulVec computes y = m·v with y[i] = row_i · v.
//
// Errors:
//   - ErrInvalidArgument (nil v), ErrLengthMismatch (v.Size() != Order()).
//
// Complexity:
//   - Time O(n²), Space O(n) for y.
func (m *Matrix[T]) MulVec(v *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	if err := validateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y, err := sequence.New[T](m.n)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	var acc T
	for i, r := range m.rows {
		if acc, err = r.Dot(v); err != nil {
			return nil, rowErrorf(opMulVec, i, err)
		}
		*y.Index(i) = acc
	}

	return y, nil
}

// addSub computes out = a ± b row by row for two matrices of equal order.
// A fresh matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: validate b is present and has a's order.
//   - Stage 2: out.row[i] = a.row[i].Add/Sub(b.row[i]).
//
// Errors:
//   - ErrInvalidArgument (nil b), ErrLengthMismatch (order differs, or a row
//     was resized behind the matrix's back).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) addSub(b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := validateSameOrder(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := validateOrder(m.n); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Matrix[T]{n: m.n, rows: make([]*sequence.Sequence[T], m.n)}
	var err error
	for i := range m.rows {
		if sub {
			out.rows[i], err = m.rows[i].Sub(b.rows[i])
		} else {
			out.rows[i], err = m.rows[i].Add(b.rows[i])
		}
		if err != nil {
			return nil, rowErrorf(opTag, i, err)
		}
	}

	return out, nil
}

// Add returns the elementwise sum m + b, or ErrLengthMismatch on order mismatch.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) { return m.addSub(b, false, opAdd) }

// Sub returns the elementwise difference m - b, or ErrLengthMismatch on order mismatch.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) { return m.addSub(b, true, opSub) }

// column gathers column j of m into dst (len(dst) == m.n). The right
// operand's columns are not contiguous, so they are materialized before
// taking dot products. Relies on the square invariant: row count == column count.
func (m *Matrix[T]) column(j int, dst *sequence.Sequence[T]) {
	for k, r := range m.rows {
		*dst.Index(k) = *r.Index(j)
	}
}

// Mul computes the product C = m·b.
// MAIN DESCRIPTION:
//   - C[i][j] = row_i(m) · col_j(b), each entry computed independently.
//
// Implementation:
//   - Stage 1: validate b is present with the same order and both operands
//     still have n elements per row; allocate zero C.
//   - Stage 2: for each j gather col_j(b) once into a scratch Sequence.
//   - Stage 3: for each i store row_i(m)·col_j(b) into C[i][j] (overwrite,
//     so nothing leaks from a previous iteration).
//
// Errors:
//   - ErrInvalidArgument (nil b), ErrLengthMismatch (order mismatch or a
//     resized row in either operand).
//
// Determinism:
//   - Fixed j→i loop order.
//
// Complexity:
//   - Time O(n³), Space O(n²) result + O(n) scratch.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameOrder(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateSquare(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := New[T](m.n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	col, err := sequence.New[T](m.n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var dot T
	for j := 0; j < m.n; j++ {
		b.column(j, col)
		for i, r := range m.rows {
			if dot, err = r.Dot(col); err != nil {
				return nil, cellErrorf(opMul, i, j, err)
			}
			*res.rows[i].Index(j) = dot
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Like Row, it assumes every row still holds Order() elements.
// A moved-from matrix transposes to another empty matrix.
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{n: m.n, rows: make([]*sequence.Sequence[T], m.n)}
	for j := range out.rows {
		col := m.rows[j].Clone()
		m.column(j, col)
		out.rows[j] = col
	}

	return out
}
