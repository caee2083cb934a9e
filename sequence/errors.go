// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// Every fallible operation returns one of these sentinels, usually wrapped
// with "Sequence.<Op>: %w" context. Tests MUST match them via errors.Is.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested length is zero, negative or
	// exceeds MaxLen.
	ErrInvalidSize = errors.New("sequence: invalid size")

	// ErrInvalidArgument indicates a required argument is absent (nil buffer,
	// nil operand) or malformed (unparsable token).
	ErrInvalidArgument = errors.New("sequence: invalid argument")

	// ErrOutOfRange indicates that a checked index is outside [0, Size()).
	ErrOutOfRange = errors.New("sequence: index out of range")

	// ErrLengthMismatch indicates that a binary operation received operands
	// of different lengths.
	ErrLengthMismatch = errors.New("sequence: length mismatch")

	// ErrAllocationFailure is returned when storage could not be obtained.
	ErrAllocationFailure = errors.New("sequence: allocation failure")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAssign    = "Assign"
	opMoveFrom  = "MoveFrom"
	opAt        = "At"
	opSet       = "Set"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opRead      = "Read"
	opWrite     = "Write"
	opFromVec   = "FromVector"
)

// seqErrorf wraps err with a "Sequence.<op>" prefix, preserving it for errors.Is.
// Call only with a non-nil err.
func seqErrorf(op string, err error) error {
	return fmt.Errorf("Sequence.%s: %w", op, err)
}

// indexErrorf wraps err with the operation and offending index.
func indexErrorf(op string, i int, err error) error {
	return fmt.Errorf("Sequence.%s(%d): %w", op, i, err)
}
