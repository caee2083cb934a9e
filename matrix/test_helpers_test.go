// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/sequence"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Matrix from a square literal or fails the test.
func mustRows[T sequence.Number](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustNew allocates a zero n×n Matrix or fails the test.
func mustNew[T sequence.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	require.NoError(t, err)

	return m
}

// mustSeq builds a Sequence from vals or fails the test.
func mustSeq[T sequence.Number](t testing.TB, vals ...T) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.Of(vals...)
	require.NoError(t, err)

	return s
}

// counting returns an n×n matrix with cell (i,j) = i*n + j + 1.
func counting[T sequence.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m := mustNew[T](t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, T(i*n+j+1)))
		}
	}

	return m
}

// Shared 4×4 fixtures used by the linear-algebra tests.
var (
	fixA = [][]int{
		{1, 2, 3, 1},
		{1, 1, 1, 1},
		{1, 2, 2, 2},
		{2, 2, 3, 3},
	}
	fixB = [][]int{
		{2, 0, 1, 3},
		{1, 4, 0, 2},
		{0, 1, 5, 1},
		{3, 2, 1, 0},
	}
	// fixAB = fixA · fixB, computed by hand.
	fixAB = [][]int{
		{7, 13, 17, 10},
		{6, 7, 7, 6},
		{10, 14, 13, 9},
		{15, 17, 20, 13},
	}
)
