// Package dynmat provides dynamically sized numeric vectors and square
// matrices with value semantics and checked arithmetic.
//
// 🚀 What is dynmat?
//
//	A small generic library built from two containers:
//		• sequence.Sequence[T]: a fixed-length vector with deep copy,
//		  O(1) move/swap, checked and unchecked indexing, scalar and
//		  elementwise arithmetic, dot product and text I/O
//		• matrix.Matrix[T]: an n×n matrix made of Sequence rows, with
//		  matrix×vector, matrix±matrix, matrix×matrix and transpose
//
// T is any Go integer or floating-point type (sequence.Number).
//
// ✨ Guarantees
//
//   - Results never alias operand storage; operands are never mutated.
//   - Every fallible operation returns a sentinel (ErrInvalidSize,
//     ErrOutOfRange, ErrLengthMismatch, ...) wrapped with the operation name.
//   - Index/Row are the only unchecked paths and are documented as such.
//   - Conversions to and from gonum.org/v1/gonum/mat for interop.
//
// Layout:
//
//	sequence/         Sequence[T], errors, text format options, gonum bridge
//	matrix/           Matrix[T] built from sequence rows
//	internal/config/  CLI configuration (viper, TOML)
//	cmd/dynmat/       command-line front end (cobra, fang, charmbracelet/log)
//	examples/         runnable programs
//
// Quick start:
//
//	a, _ := sequence.Of(5, 4, 3)
//	b, _ := sequence.Of(1, 2, 3)
//	d, _ := a.Dot(b) // 22
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	y, _ := m.MulVec(b)
package dynmat
