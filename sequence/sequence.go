// SPDX-License-Identifier: MIT

// Package sequence - construction, ownership (copy/move/swap) & indexed access.
//
// Purpose:
//   - Own one contiguous buffer per Sequence; never alias storage across instances.
//   - Deep copy on Clone/Assign, O(1) ownership transfer on Move/MoveFrom/Swap.
//   - Safe public accessors (At/Get/Set) next to an explicit unchecked Index.

package sequence

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// validateLen reports ErrInvalidSize unless 1 ≤ n ≤ MaxLen.
func validateLen(n int) error {
	if n <= 0 || n > MaxLen {
		return ErrInvalidSize
	}

	return nil
}

// allocate returns a zero-filled buffer of n elements.
// A runtime allocation failure (e.g. makeslice: len out of range) is
// surfaced as ErrAllocationFailure instead of crashing the caller.
// Non-runtime panics are re-raised untouched.
func allocate[T Number](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, ErrAllocationFailure
		}
	}()

	return make([]T, n), nil
}

// New creates a Sequence of n zero-valued elements.
// Implementation:
//   - Stage 1: validate 1 ≤ n ≤ MaxLen; else ErrInvalidSize.
//   - Stage 2: allocate the zero-filled buffer (ErrAllocationFailure on failure).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](n int) (*Sequence[T], error) {
	if err := validateLen(n); err != nil {
		return nil, seqErrorf(opNew, err)
	}
	buf, err := allocate[T](n)
	if err != nil {
		return nil, seqErrorf(opNew, err)
	}

	return &Sequence[T]{n: n, data: buf}, nil
}

// FromSlice creates a Sequence holding a deep copy of buf[:n].
// The caller keeps ownership of buf; later writes to buf are not observed.
//
// Errors:
//   - ErrInvalidArgument when buf is nil or shorter than n.
//   - ErrInvalidSize when n is outside [1, MaxLen].
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T Number](buf []T, n int) (*Sequence[T], error) {
	if buf == nil {
		return nil, seqErrorf(opFromSlice, ErrInvalidArgument)
	}
	if err := validateLen(n); err != nil {
		return nil, seqErrorf(opFromSlice, err)
	}
	if len(buf) < n {
		return nil, fmt.Errorf("Sequence.%s: buffer holds %d of %d elements: %w",
			opFromSlice, len(buf), n, ErrInvalidArgument)
	}
	data, err := allocate[T](n)
	if err != nil {
		return nil, seqErrorf(opFromSlice, err)
	}
	copy(data, buf[:n])

	return &Sequence[T]{n: n, data: data}, nil
}

// Of is shorthand for FromSlice(vals, len(vals)).
func Of[T Number](vals ...T) (*Sequence[T], error) {
	if vals == nil {
		return nil, seqErrorf(opFromSlice, ErrInvalidSize)
	}

	return FromSlice(vals, len(vals))
}

// Size returns the current element count. A moved-from Sequence reports 0.
func (s *Sequence[T]) Size() int { return s.n }

// Clone returns a deep copy with its own storage.
// Cloning a moved-from Sequence yields another empty Sequence.
// Complexity: O(n).
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{n: s.n, data: slices.Clone(s.data)}
}

// Assign replaces the receiver's length and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy assignment with the strong guarantee: either the receiver becomes
//     equal to src or it is left untouched.
//
// Implementation:
//   - Stage 1: reject nil src; self-assignment returns immediately.
//   - Stage 2: build an independent copy of src.
//   - Stage 3: swap it into place; the old buffer goes with the temporary.
//
// Behavior highlights:
//   - Lengths may differ: the receiver is resized to src.Size().
//   - src is never modified.
//
// Complexity:
//   - Time O(src.n), Space O(src.n).
func (s *Sequence[T]) Assign(src *Sequence[T]) error {
	if src == nil {
		return seqErrorf(opAssign, ErrInvalidArgument)
	}
	if s == src {
		return nil
	}
	tmp := &Sequence[T]{n: src.n}
	if src.n > 0 {
		buf, err := allocate[T](src.n)
		if err != nil {
			return seqErrorf(opAssign, err)
		}
		copy(buf, src.data)
		tmp.data = buf
	}
	s.Swap(tmp)

	return nil
}

// Move transfers the receiver's storage into a new Sequence in O(1).
// The receiver is left empty (Size()==0) and may be reassigned or dropped.
func (s *Sequence[T]) Move() *Sequence[T] {
	out := &Sequence[T]{}
	out.Swap(s)

	return out
}

// MoveFrom takes ownership of src's storage in O(1), releasing the receiver's
// previous buffer. src is left empty. Moving a Sequence into itself is a no-op.
func (s *Sequence[T]) MoveFrom(src *Sequence[T]) error {
	if src == nil {
		return seqErrorf(opMoveFrom, ErrInvalidArgument)
	}
	if s == src {
		return nil
	}
	s.n, s.data = 0, nil // release our buffer first
	s.Swap(src)

	return nil
}

// Swap exchanges length and storage with other without copying elements.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	s.n, other.n = other.n, s.n
	s.data, other.data = other.data, s.data
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T Number](a, b *Sequence[T]) { a.Swap(b) }

// Index returns a pointer to element i WITHOUT bounds validation.
//
// DANGER: i must lie in [0, Size()). The library does not check it; an
// out-of-range index is a caller bug and the Go runtime panics. Use At for
// user-controlled indices.
func (s *Sequence[T]) Index(i int) *T { return &s.data[i] }

// At returns a pointer to element i, or ErrOutOfRange when i is outside
// [0, Size()). The pointer aliases the same element Index(i) returns.
// Complexity: O(1).
func (s *Sequence[T]) At(i int) (*T, error) {
	if i < 0 || i >= s.n {
		return nil, indexErrorf(opAt, i, ErrOutOfRange)
	}

	return &s.data[i], nil
}

// Get reads element i with bounds checking.
func (s *Sequence[T]) Get(i int) (T, error) {
	p, err := s.At(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set writes v at i with bounds checking.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.n {
		return indexErrorf(opSet, i, ErrOutOfRange)
	}
	s.data[i] = v

	return nil
}

// Values returns a copy of the elements; the result never aliases storage.
func (s *Sequence[T]) Values() []T { return slices.Clone(s.data) }

// Fill sets every element to v.
func (s *Sequence[T]) Fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

// Apply replaces each element with f(i, v) in index order.
func (s *Sequence[T]) Apply(f func(i int, v T) T) {
	for i, v := range s.data {
		s.data[i] = f(i, v)
	}
}

// Equal reports whether both sequences have the same length and equal
// elements. It never fails; sequences of different length are not equal.
// Two nil receivers compare equal, nil and non-nil do not.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.n != other.n {
		return false
	}

	return slices.Equal(s.data, other.data)
}

// String renders the sequence as "[a, b, c]" for diagnostics.
func (s *Sequence[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, v := range s.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
