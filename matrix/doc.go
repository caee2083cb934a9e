// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a square numeric container composed of
// sequence.Sequence rows.
//
// The matrix package provides:
//
//   - Value semantics mirroring sequence: Clone/Assign deep-copy every row,
//     Move/MoveFrom/Swap transfer ownership in O(1).
//   - Two-level indexing: At(r) checks the row, the returned row's At(c)
//     checks the column; Get/Set chain both for convenience.
//   - Linear algebra on square operands: MulScalar, MulVec, Add, Sub, Mul,
//     Transpose. Results never alias operand storage.
//   - Row-per-line text I/O built on the sequence read/write hooks.
//
// Errors are the sequence sentinels re-exported under this package, so
// errors.Is(err, matrix.ErrLengthMismatch) and
// errors.Is(err, sequence.ErrLengthMismatch) are interchangeable.
package matrix
