// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication: each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/dynmat/sequence"

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func Identity[T sequence.Number](n int) (*Matrix[T], error) {
	I, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		*I.rows[i].Index(i) = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the order of m.
func ZerosLike[T sequence.Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := validateOperand(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return New[T](m.n)
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Matrix.Clone.
func CloneMatrix[T sequence.Number](m *Matrix[T]) *Matrix[T] { return m.Clone() }

// Sum returns a + b.
func Sum[T sequence.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Add(b) }

// Diff returns a - b.
func Diff[T sequence.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Sub(b) }

// Product returns a·b.
func Product[T sequence.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Mul(b) }

// ScaleBy returns k·m.
func ScaleBy[T sequence.Number](m *Matrix[T], k T) *Matrix[T] { return m.MulScalar(k) }

// MatVecMul returns m·v.
func MatVecMul[T sequence.Number](m *Matrix[T], v *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	return m.MulVec(v)
}

// Power returns m^k for k ≥ 0 by repeated squaring; m^0 is the identity.
//
// Errors:
//   - ErrInvalidArgument for k < 0 or a nil m.
//
// Complexity:
//   - Time O(n³ log k).
func Power[T sequence.Number](m *Matrix[T], k int) (*Matrix[T], error) {
	if err := validateOperand(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPower, ErrInvalidArgument)
	}
	res, err := Identity[T](m.n)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if res, err = res.Mul(base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return res, nil
}
