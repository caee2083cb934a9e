// SPDX-License-Identifier: MIT

package sequence

import "gonum.org/v1/gonum/mat"

// ToVecDense copies the elements into a new gonum column vector, converting
// each one to float64. An empty (moved-from) sequence yields nil because
// gonum does not allow zero-length vectors.
func (s *Sequence[T]) ToVecDense() *mat.VecDense {
	if s.n == 0 {
		return nil
	}
	data := make([]float64, s.n)
	for i, v := range s.data {
		data[i] = float64(v)
	}

	return mat.NewVecDense(s.n, data)
}

// FromVector builds a Sequence from any gonum vector, converting each element
// with T(v). Integer element types truncate toward zero.
//
// Errors:
//   - ErrInvalidArgument for a nil vector.
//   - ErrInvalidSize when v.Len() is outside [1, MaxLen].
func FromVector[T Number](v mat.Vector) (*Sequence[T], error) {
	if v == nil {
		return nil, seqErrorf(opFromVec, ErrInvalidArgument)
	}
	out, err := New[T](v.Len())
	if err != nil {
		return nil, seqErrorf(opFromVec, err)
	}
	for i := range out.data {
		out.data[i] = T(v.AtVec(i))
	}

	return out, nil
}
