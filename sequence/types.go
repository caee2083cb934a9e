// SPDX-License-Identifier: MIT

package sequence

import "golang.org/x/exp/constraints"

// MaxLen is the largest length a Sequence may be created with.
const MaxLen = 100000000

// Number is the element constraint: any integer or floating-point kind.
// Arithmetic operators and text I/O are defined for every member.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sequence is an owning, fixed-length-at-a-time numeric vector.
//   - n is the element count; 1 ≤ n ≤ MaxLen while valid, 0 once moved from.
//   - data is exclusively owned; len(data) == n at all times (nil when n == 0).
type Sequence[T Number] struct {
	n    int // element count
	data []T // owned storage, never shared with another Sequence
}
