// SPDX-License-Identifier: MIT

// Package sequence provides Sequence[T], an owning one-dimensional numeric
// container with value semantics.
//
// What & Why:
//
//	A Sequence owns exactly one contiguous buffer of Size() elements. Copies
//	(Clone, Assign) are deep; moves (Move, MoveFrom) transfer the buffer in
//	O(1) and leave the source empty but valid. No two live sequences ever
//	share storage, and every arithmetic operation returns a freshly allocated
//	result, so operands are never mutated.
//
// Access:
//
//	At/Get/Set are bounds-checked and return ErrOutOfRange.
//	Index is the unchecked path for tight loops: the library performs no
//	validation there, an out-of-range index is a caller bug (the Go runtime
//	will panic).
//
// Errors:
//
//	ErrInvalidSize, ErrInvalidArgument, ErrOutOfRange, ErrLengthMismatch and
//	ErrAllocationFailure are sentinels; match them with errors.Is.
//
// Complexity:
//
//	New/Clone/Assign: O(n). Move/MoveFrom/Swap/Size: O(1).
//	Scalar and elementwise ops, Dot: O(n).
package sequence
