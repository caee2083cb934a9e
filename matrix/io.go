// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dynmat/sequence"
)

// Read fills the matrix from r in row-major order, n×n tokens in total.
//
// The reader is wrapped once and shared by every row, so tokens buffered
// while reading one row are visible to the next. Read is all-or-nothing:
// rows are parsed into a scratch matrix whose buffers are exchanged into
// the existing rows only on success, so row handles taken earlier through
// At or Row observe the new contents.
//
// Errors:
//   - ErrInvalidArgument for a nil reader or a malformed token.
//   - io.ErrUnexpectedEOF when the input ends early.
func (m *Matrix[T]) Read(r io.Reader) error {
	if r == nil {
		return matrixErrorf(opRead, ErrInvalidArgument)
	}
	if m.n == 0 {
		return nil
	}
	rs := sequence.RuneScanner(r)
	scratch, err := New[T](m.n)
	if err != nil {
		return matrixErrorf(opRead, err)
	}
	for i, row := range scratch.rows {
		if err = row.Read(rs); err != nil {
			return rowErrorf(opRead, i, err)
		}
	}
	for i, row := range m.rows {
		row.Swap(scratch.rows[i])
	}

	return nil
}

// Write renders one row per line. Rows use the sequence FormatOptions;
// the terminator defaults to "\n" and may be overridden by opts.
func (m *Matrix[T]) Write(w io.Writer, opts ...sequence.FormatOption) error {
	if w == nil {
		return matrixErrorf(opWrite, ErrInvalidArgument)
	}
	all := make([]sequence.FormatOption, 0, len(opts)+1)
	all = append(all, sequence.WithTerminator(_fmtRowClose))
	all = append(all, opts...)
	for i, row := range m.rows {
		if err := row.Write(w, all...); err != nil {
			return fmt.Errorf("Matrix.%s(%d): %w", opWrite, i, err)
		}
	}

	return nil
}
