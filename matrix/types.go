// SPDX-License-Identifier: MIT

// Package matrix: domain types.
package matrix

import "github.com/katalvlaran/dynmat/sequence"

// MaxOrder is the largest order a Matrix may be created with.
const MaxOrder = 10000

// Matrix is a square container of n rows, each an independently owned
// Sequence of length n.
//   - n is the order; 1 ≤ n ≤ MaxOrder while valid, 0 once moved from.
//   - rows has exactly n entries; no row is ever shared with another Matrix.
//
// Matrix composes Sequence rather than embedding it: only indexing, order
// and equality are re-exposed, arithmetic is defined here in 2-D terms.
type Matrix[T sequence.Number] struct {
	n    int                     // order (rows == cols)
	rows []*sequence.Sequence[T] // owned rows, len(rows) == n
}
