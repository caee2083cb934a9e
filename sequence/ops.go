// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Scalar (AddScalar/SubScalar/MulScalar) and elementwise (Add/Sub) kernels
//     plus the Dot product.
//
// Determinism & Performance:
//   - Fixed 0..n-1 loop order; one allocation for the result, none for Dot.
//   - Operands are read-only; results never alias operand storage.

package sequence

// scalar returns a new sequence with out[i] = f(s[i]).
// The receiver's length was validated at construction, so allocate cannot
// fail here; if it ever does the wrapped ErrAllocationFailure is raised as
// a panic, since the scalar operations have no error return.
func (s *Sequence[T]) scalar(opTag string, f func(v T) T) *Sequence[T] {
	data, err := allocate[T](s.n)
	if err != nil {
		panic(seqErrorf(opTag, err))
	}
	out := &Sequence[T]{n: s.n, data: data}
	for i, v := range s.data {
		out.data[i] = f(v)
	}

	return out
}

// AddScalar returns s + k elementwise. s is not modified.
func (s *Sequence[T]) AddScalar(k T) *Sequence[T] {
	return s.scalar(opAddScalar, func(v T) T { return v + k })
}

// SubScalar returns s - k elementwise. s is not modified.
func (s *Sequence[T]) SubScalar(k T) *Sequence[T] {
	return s.scalar(opSubScalar, func(v T) T { return v - k })
}

// MulScalar returns s * k elementwise. s is not modified.
func (s *Sequence[T]) MulScalar(k T) *Sequence[T] {
	return s.scalar(opMulScalar, func(v T) T { return v * k })
}

// validateBinary checks that o is present and has the receiver's length.
func (s *Sequence[T]) validateBinary(o *Sequence[T]) error {
	if o == nil {
		return ErrInvalidArgument
	}
	if s.n != o.n {
		return ErrLengthMismatch
	}

	return nil
}

// addSub computes out = s + sign*o for sign ∈ {+1, -1}.
// Both operands stay untouched; the result owns a fresh buffer.
// Complexity: Time O(n), Space O(n).
func (s *Sequence[T]) addSub(o *Sequence[T], sub bool, opTag string) (*Sequence[T], error) {
	if err := s.validateBinary(o); err != nil {
		return nil, seqErrorf(opTag, err)
	}
	data, err := allocate[T](s.n)
	if err != nil {
		return nil, seqErrorf(opTag, err)
	}
	out := &Sequence[T]{n: s.n, data: data}
	if sub {
		for i := range s.data {
			out.data[i] = s.data[i] - o.data[i]
		}
		return out, nil
	}
	for i := range s.data {
		out.data[i] = s.data[i] + o.data[i]
	}

	return out, nil
}

// Add returns the elementwise sum s + o, or ErrLengthMismatch.
func (s *Sequence[T]) Add(o *Sequence[T]) (*Sequence[T], error) {
	return s.addSub(o, false, opAdd)
}

// Sub returns the elementwise difference s - o, or ErrLengthMismatch.
func (s *Sequence[T]) Sub(o *Sequence[T]) (*Sequence[T], error) {
	return s.addSub(o, true, opSub)
}

// Dot returns Σ s[i]*o[i], accumulated in T starting from T's zero value.
//
// Errors:
//   - ErrLengthMismatch when lengths differ; ErrInvalidArgument for nil o.
//
// Complexity:
//   - Time O(n), Space O(1).
func (s *Sequence[T]) Dot(o *Sequence[T]) (T, error) {
	var acc T // additive identity
	if err := s.validateBinary(o); err != nil {
		return acc, seqErrorf(opDot, err)
	}
	for i := range s.data {
		acc += s.data[i] * o.data[i]
	}

	return acc, nil
}
