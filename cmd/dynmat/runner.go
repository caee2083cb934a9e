// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/sequence"
)

// Subcommand names.
const (
	opDot    = "dot"
	opVAdd   = "vadd"
	opVSub   = "vsub"
	opMatVec = "matvec"
	opMAdd   = "madd"
	opMSub   = "msub"
	opMatMul = "matmul"
)

// job is one arithmetic request, independent of the element type.
type job struct {
	op     string
	n      int
	in     io.Reader
	out    io.Writer
	opts   []sequence.FormatOption
	verb   string
	logger *log.Logger
}

// runJob executes j with element type T.
func runJob[T sequence.Number](j job) error {
	switch j.op {
	case opDot, opVAdd, opVSub:
		return runVector[T](j)
	case opMatVec:
		return runMatVec[T](j)
	case opMAdd, opMSub, opMatMul:
		return runMatrix[T](j)
	default:
		return fmt.Errorf("unknown operation %q", j.op)
	}
}

// readVector allocates and reads one vector of j.n elements.
func readVector[T sequence.Number](j job, name string) (*sequence.Sequence[T], error) {
	v, err := sequence.New[T](j.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err = v.Read(j.in); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	j.logger.Debug("read vector", "name", name, "size", v.Size())

	return v, nil
}

// readMatrix allocates and reads one j.n×j.n matrix.
func readMatrix[T sequence.Number](j job, name string) (*matrix.Matrix[T], error) {
	m, err := matrix.New[T](j.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err = m.Read(j.in); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	j.logger.Debug("read matrix", "name", name, "order", m.Order())

	return m, nil
}

func runVector[T sequence.Number](j job) error {
	a, err := readVector[T](j, "a")
	if err != nil {
		return err
	}
	b, err := readVector[T](j, "b")
	if err != nil {
		return err
	}

	var res *sequence.Sequence[T]
	switch j.op {
	case opDot:
		d, err := a.Dot(b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(j.out, j.verb+"\n", d)
		return err
	case opVAdd:
		res, err = a.Add(b)
	case opVSub:
		res, err = a.Sub(b)
	}
	if err != nil {
		return err
	}

	return res.Write(j.out, append(j.opts, sequence.WithTerminator("\n"))...)
}

func runMatVec[T sequence.Number](j job) error {
	m, err := readMatrix[T](j, "m")
	if err != nil {
		return err
	}
	v, err := readVector[T](j, "v")
	if err != nil {
		return err
	}
	y, err := m.MulVec(v)
	if err != nil {
		return err
	}

	return y.Write(j.out, append(j.opts, sequence.WithTerminator("\n"))...)
}

func runMatrix[T sequence.Number](j job) error {
	a, err := readMatrix[T](j, "a")
	if err != nil {
		return err
	}
	b, err := readMatrix[T](j, "b")
	if err != nil {
		return err
	}

	var res *matrix.Matrix[T]
	switch j.op {
	case opMAdd:
		res, err = a.Add(b)
	case opMSub:
		res, err = a.Sub(b)
	case opMatMul:
		res, err = a.Mul(b)
	}
	if err != nil {
		return err
	}

	return res.Write(j.out, j.opts...)
}
