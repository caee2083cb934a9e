// SPDX-License-Identifier: MIT
// Package sequence_test contains shared fixtures.

package sequence_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/sequence"
	"github.com/stretchr/testify/require"
)

// mustOf builds a Sequence from vals or fails the test.
func mustOf[T sequence.Number](t testing.TB, vals ...T) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.Of(vals...)
	require.NoError(t, err)

	return s
}

// mustNew allocates a zero Sequence of length n or fails the test.
func mustNew[T sequence.Number](t testing.TB, n int) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.New[T](n)
	require.NoError(t, err)

	return s
}

// ten returns the canonical 1..10 fixture.
func ten[T sequence.Number]() []T {
	out := make([]T, 10)
	for i := range out {
		out[i] = T(i + 1)
	}

	return out
}

// forEachType runs body once per supported element type used in the tests.
func forEachType(t *testing.T, intBody, floatBody func(t *testing.T)) {
	t.Run("int", intBody)
	t.Run("float64", floatBody)
}
