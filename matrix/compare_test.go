// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1 + 1e-10, 2}, {3, 4 - 1e-10}})

	ok, err := a.AllClose(b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.AllClose(b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = a.AllClose(a.MulScalar(1.01), 0.02, 0) // relative only
	require.NoError(t, err)
	require.True(t, ok)

	nan := a.Clone()
	require.NoError(t, nan.Set(0, 0, math.NaN()))
	ok, err = nan.AllClose(nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = a.AllClose(b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = a.AllClose(mustNew[float64](t, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}
