// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Matrix shares the sequence error taxonomy: the variables below are the
// very same sentinels, so a row-level failure surfaced through a matrix
// operation still matches errors.Is against either package.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/sequence"
)

var (
	// ErrInvalidSize is returned when a requested order is ≤ 0 or > MaxOrder.
	ErrInvalidSize = sequence.ErrInvalidSize

	// ErrInvalidArgument indicates a nil operand or malformed input.
	ErrInvalidArgument = sequence.ErrInvalidArgument

	// ErrOutOfRange indicates a checked row (or column) index outside [0, Order()).
	ErrOutOfRange = sequence.ErrOutOfRange

	// ErrLengthMismatch indicates operands of different order, a vector whose
	// length differs from the order, or a non-square source.
	ErrLengthMismatch = sequence.ErrLengthMismatch

	// ErrAllocationFailure is returned when row storage could not be obtained.
	ErrAllocationFailure = sequence.ErrAllocationFailure
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAssign    = "Assign"
	opMoveFrom  = "MoveFrom"
	opAt        = "At"
	opGet       = "Get"
	opSet       = "Set"
	opSetRow    = "SetRow"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opRead      = "Read"
	opWrite     = "Write"
	opFromDense = "FromDense"
	opPower     = "Power"
	opAllClose  = "AllClose"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// cellErrorf wraps err with the operation and the (row, col) coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}

// rowErrorf wraps err with the operation and the row index.
func rowErrorf(tag string, row int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", tag, row, err)
}
