// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether |m(i,j) - b(i,j)| ≤ atol + rtol·|b(i,j)| for every
// cell. Intended for float element types where Equal is too strict.
//
// Policy:
//   - rtol and atol are used as |rtol|, |atol|; NaN or Inf tolerances are
//     rejected with ErrInvalidArgument.
//   - b must be non-nil with the same order, else ErrInvalidArgument /
//     ErrLengthMismatch. A resized row in either operand is ErrLengthMismatch.
//   - A NaN cell never compares close.
//
// Complexity: O(n²) time, O(1) space; exits on the first violation.
func (m *Matrix[T]) AllClose(b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidArgument)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := validateSameOrder(m, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateSquare(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i := 0; i < m.n; i++ {
		ra, rb := m.rows[i], b.rows[i]
		for j := 0; j < m.n; j++ {
			av, bv := float64(*ra.Index(j)), float64(*rb.Index(j))
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
