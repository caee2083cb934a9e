// SPDX-License-Identifier: MIT

package sequence_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/dynmat/sequence"
	"github.com/stretchr/testify/require"
)

// TestRead_Tokens reads exactly Size() tokens across arbitrary whitespace.
func TestRead_Tokens(t *testing.T) {
	t.Parallel()
	s := mustNew[int](t, 4)
	require.NoError(t, s.Read(strings.NewReader("1 2\n 3\t4 5")))
	require.Equal(t, []int{1, 2, 3, 4}, s.Values())

	f := mustNew[float64](t, 2)
	require.NoError(t, f.Read(strings.NewReader("0.5 -2e3")))
	require.Equal(t, []float64{0.5, -2000}, f.Values())
}

// TestRead_SharedScanner reads two sequences from one stream without losing input.
func TestRead_SharedScanner(t *testing.T) {
	t.Parallel()
	rs := sequence.RuneScanner(io.MultiReader(strings.NewReader("1 2 3\n4 5 6\n")))
	a := mustNew[int](t, 3)
	b := mustNew[int](t, 3)
	require.NoError(t, a.Read(rs))
	require.NoError(t, b.Read(rs))
	require.Equal(t, []int{1, 2, 3}, a.Values())
	require.Equal(t, []int{4, 5, 6}, b.Values())

	_, ok := rs.(io.RuneScanner)
	require.True(t, ok)

	sr := strings.NewReader("7")
	require.Same(t, sr, sequence.RuneScanner(sr)) // already a RuneScanner
}

// TestRead_ShortInput leaves the contents untouched.
func TestRead_ShortInput(t *testing.T) {
	t.Parallel()
	s := mustOf(t, 7, 7, 7)
	err := s.Read(strings.NewReader("1 2"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, []int{7, 7, 7}, s.Values())
}

// TestRead_BadToken reports ErrInvalidArgument and keeps contents.
func TestRead_BadToken(t *testing.T) {
	t.Parallel()
	s := mustOf(t, 7, 7)
	err := s.Read(strings.NewReader("1 x"))
	require.ErrorIs(t, err, sequence.ErrInvalidArgument)
	require.Equal(t, []int{7, 7}, s.Values())

	require.ErrorIs(t, s.Read(nil), sequence.ErrInvalidArgument)
}

// TestWrite_DefaultsAndOptions covers separators, verbs and terminators.
func TestWrite_DefaultsAndOptions(t *testing.T) {
	t.Parallel()
	s := mustOf(t, 1.5, 2, 3.26)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	require.Equal(t, "1.5 2 3.26", buf.String())

	buf.Reset()
	require.NoError(t, s.Write(&buf,
		sequence.WithSeparator(","),
		sequence.WithVerb("%.1f"),
		sequence.WithTerminator("\n"),
	))
	require.Equal(t, "1.5,2.0,3.3\n", buf.String())

	require.ErrorIs(t, s.Write(nil), sequence.ErrInvalidArgument)
}

// TestWrite_RoundTrip feeds Write output back through Read.
func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()
	src := mustOf[int64](t, 9, -8, 7, 0)
	var buf bytes.Buffer
	require.NoError(t, src.Write(&buf))

	dst := mustNew[int64](t, src.Size())
	require.NoError(t, dst.Read(&buf))
	require.True(t, dst.Equal(src))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWrite_PropagatesWriterError surfaces the underlying error.
func TestWrite_PropagatesWriterError(t *testing.T) {
	t.Parallel()
	err := mustOf(t, 1).Write(failingWriter{})
	require.EqualError(t, err, "Sequence.Write: disk full")
}

// TestNewFormat_Defaults and panic policy.
func TestNewFormat_Defaults(t *testing.T) {
	t.Parallel()
	f := sequence.NewFormat()
	require.Equal(t, sequence.DefaultSeparator, f.Separator())
	require.Equal(t, sequence.DefaultVerb, f.Verb())
	require.Equal(t, sequence.DefaultTerminator, f.Terminator())

	f = sequence.NewFormat(sequence.WithSeparator(";"), nil, sequence.WithSeparator("|"))
	require.Equal(t, "|", f.Separator()) // last writer wins, nil ignored

	require.PanicsWithValue(t, sequence.PanicVerbInvalid_Raw, func() {
		sequence.WithVerb("d")
	})
}
