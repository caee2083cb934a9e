// SPDX-License-Identifier: MIT

// Package sequence: functional configuration for the textual write hook.
// This file defines:
//   - FormatOption / Format (functional options with resolved state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values (programmer error).
//
// Notes:
//   - The core does not constrain presentation: separators, per-element verbs
//     and terminators are all caller decisions. Defaults reproduce the plain
//     space-separated token stream that Read consumes.
package sequence

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written between two consecutive tokens.
	DefaultSeparator = " "

	// DefaultVerb is the fmt verb used to render one element.
	DefaultVerb = "%v"

	// DefaultTerminator is written after the last token.
	DefaultTerminator = ""
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid = "sequence: WithVerb: verb must start with '%'"
)

// FormatOption mutates a Format. Later options win.
type FormatOption func(*Format)

// Format is the resolved write configuration.
type Format struct {
	sep  string // token separator
	verb string // fmt verb per element
	term string // written after the last token
}

// WithSeparator sets the string written between tokens (may be empty).
func WithSeparator(sep string) FormatOption {
	return func(f *Format) { f.sep = sep }
}

// WithVerb sets the fmt verb used for each element, e.g. "%d" or "%.3f".
// Panics when verb does not start with '%'.
func WithVerb(verb string) FormatOption {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(f *Format) { f.verb = verb }
}

// WithTerminator sets the string written after the last token, e.g. "\n".
func WithTerminator(term string) FormatOption {
	return func(f *Format) { f.term = term }
}

// NewFormat resolves opts against the defaults (last-writer-wins).
func NewFormat(opts ...FormatOption) Format {
	f := Format{
		sep:  DefaultSeparator,
		verb: DefaultVerb,
		term: DefaultTerminator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}

	return f
}

// Separator returns the effective token separator.
func (f Format) Separator() string { return f.sep }

// Verb returns the effective per-element fmt verb.
func (f Format) Verb() string { return f.verb }

// Terminator returns the effective trailing string.
func (f Format) Terminator() string { return f.term }
