// SPDX-License-Identifier: MIT

// Package matrix - row storage & safe accessors.
//
// Purpose:
//   - Two-level access: the matrix validates the row, the row validates the column.
//   - Keep the unchecked Row path explicit and separate from At.
//   - Equality and diagnostics expressed through the row Sequences.

package matrix

import (
	"strings"

	"github.com/katalvlaran/dynmat/sequence"
)

// ---------- Formatting literals ----------
const (
	_fmtRowClose = "\n"
)

// Row returns row i WITHOUT bounds validation.
//
// DANGER: i must lie in [0, Order()); an out-of-range index is a caller bug
// and the Go runtime panics. The returned row is owned by the matrix:
// resizing it (Assign/MoveFrom with another length) breaks the square
// invariant. The error-returning operations (Add, Sub, Mul, MulVec,
// AllClose) then report ErrLengthMismatch; Transpose and ToDense assume
// intact rows and panic like Row itself.
func (m *Matrix[T]) Row(i int) *sequence.Sequence[T] { return m.rows[i] }

// At returns row i or ErrOutOfRange. Only the row index is checked here;
// column checks belong to the row: m.At(r) then row.At(c).
// Complexity: O(1).
func (m *Matrix[T]) At(i int) (*sequence.Sequence[T], error) {
	if i < 0 || i >= m.n {
		return nil, rowErrorf(opAt, i, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// Get reads (r, c) through the two-level checked path.
func (m *Matrix[T]) Get(r, c int) (T, error) {
	var zero T
	row, err := m.At(r)
	if err != nil {
		return zero, cellErrorf(opGet, r, c, err)
	}
	v, err := row.Get(c)
	if err != nil {
		return zero, cellErrorf(opGet, r, c, err)
	}

	return v, nil
}

// Set writes v at (r, c) through the two-level checked path.
func (m *Matrix[T]) Set(r, c int, v T) error {
	row, err := m.At(r)
	if err != nil {
		return cellErrorf(opSet, r, c, err)
	}
	if err = row.Set(c, v); err != nil {
		return cellErrorf(opSet, r, c, err)
	}

	return nil
}

// SetRow replaces row i with a deep copy of row.
//
// Errors:
//   - ErrOutOfRange for i outside [0, Order()).
//   - ErrInvalidArgument for a nil row; ErrLengthMismatch when row.Size() != Order().
func (m *Matrix[T]) SetRow(i int, row *sequence.Sequence[T]) error {
	if i < 0 || i >= m.n {
		return rowErrorf(opSetRow, i, ErrOutOfRange)
	}
	if err := validateVecLen(m, row); err != nil {
		return rowErrorf(opSetRow, i, err)
	}
	if err := m.rows[i].Assign(row); err != nil {
		return rowErrorf(opSetRow, i, err)
	}

	return nil
}

// Rows returns a copy of the contents as a slice of row slices.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}

// Equal reports whether both matrices have the same order and every row
// compares equal as a Sequence. Nil-safe; never fails.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one "[a, b, c]" line per row for diagnostics.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String())
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
