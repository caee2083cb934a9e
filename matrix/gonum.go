// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum/mat.
//
// Values are converted through float64; integer element types truncate
// toward zero on the way back, as a Go conversion does.

package matrix

import (
	"github.com/katalvlaran/dynmat/sequence"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a new *mat.Dense. A moved-from matrix yields nil,
// since gonum rejects zero-sized matrices. Every row must still hold
// Order() elements.
func (m *Matrix[T]) ToDense() *mat.Dense {
	if m.n == 0 {
		return nil
	}
	data := make([]float64, 0, m.n*m.n)
	for _, r := range m.rows {
		for j := 0; j < m.n; j++ {
			data = append(data, float64(*r.Index(j)))
		}
	}

	return mat.NewDense(m.n, m.n, data)
}

// FromDense builds a Matrix from any square gonum matrix.
//
// Errors:
//   - ErrInvalidArgument for nil src; ErrLengthMismatch for a non-square src.
//   - ErrInvalidSize when the order exceeds MaxOrder.
func FromDense[T sequence.Number](src mat.Matrix) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromDense, ErrInvalidArgument)
	}
	r, c := src.Dims()
	if r != c {
		return nil, matrixErrorf(opFromDense, ErrLengthMismatch)
	}
	out, err := New[T](r)
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	for i, row := range out.rows {
		for j := 0; j < r; j++ {
			*row.Index(j) = T(src.At(i, j))
		}
	}

	return out, nil
}
