// SPDX-License-Identifier: MIT

package sequence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RuneScanner returns a reader that also implements io.RuneScanner: r itself
// when it already does, a bufio.Reader over r otherwise. Callers that read
// several containers from one stream must wrap once and pass the result to
// every Read so no input is lost between calls.
func RuneScanner(r io.Reader) io.Reader {
	if _, ok := r.(io.RuneScanner); ok {
		return r
	}

	return bufio.NewReader(r)
}

// Read consumes exactly Size() whitespace-separated tokens from r into the
// existing storage.
//
// Behavior highlights:
//   - All-or-nothing: tokens are parsed into a scratch buffer that replaces
//     the contents only after every token parsed.
//   - Short input yields io.ErrUnexpectedEOF; a malformed token yields
//     ErrInvalidArgument. Both are wrapped with the failing token index.
//
// Complexity:
//   - Time O(n), Space O(n) scratch.
func (s *Sequence[T]) Read(r io.Reader) error {
	if r == nil {
		return seqErrorf(opRead, ErrInvalidArgument)
	}
	rs := RuneScanner(r)
	scratch := make([]T, s.n)
	for i := range scratch {
		if _, err := fmt.Fscan(rs, &scratch[i]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("Sequence.%s: token %d: %w", opRead, i, io.ErrUnexpectedEOF)
			}
			return fmt.Errorf("Sequence.%s: token %d: %w (%v)", opRead, i, ErrInvalidArgument, err)
		}
	}
	copy(s.data, scratch)

	return nil
}

// Write renders the elements as tokens joined by the configured separator,
// followed by the terminator. Defaults: "%v" tokens, " " separator, no terminator.
func (s *Sequence[T]) Write(w io.Writer, opts ...FormatOption) error {
	if w == nil {
		return seqErrorf(opWrite, ErrInvalidArgument)
	}
	f := NewFormat(opts...)

	var b strings.Builder
	for i, v := range s.data {
		if i > 0 {
			b.WriteString(f.sep)
		}
		fmt.Fprintf(&b, f.verb, v)
	}
	b.WriteString(f.term)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return seqErrorf(opWrite, err)
	}

	return nil
}
