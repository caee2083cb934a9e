// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/spf13/cobra"
)

// opDef describes one arithmetic subcommand.
type opDef struct {
	op    string
	short string
	input string
}

var (
	vectorOps = []opDef{
		{opDot, "Dot product of two vectors", "two vectors of N elements"},
		{opVAdd, "Elementwise sum of two vectors", "two vectors of N elements"},
		{opVSub, "Elementwise difference of two vectors", "two vectors of N elements"},
	}
	matrixOps = []opDef{
		{opMatVec, "Product of an N×N matrix and a vector", "an N×N matrix followed by a vector of N elements"},
		{opMAdd, "Sum of two N×N matrices", "two N×N matrices"},
		{opMSub, "Difference of two N×N matrices", "two N×N matrices"},
		{opMatMul, "Product of two N×N matrices", "two N×N matrices"},
	}
)

func newVectorCommands(a *app) []*cobra.Command { return newOpCommands(a, vectorOps) }

func newMatrixCommands(a *app) []*cobra.Command { return newOpCommands(a, matrixOps) }

func newOpCommands(a *app, defs []opDef) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(defs))
	for _, s := range defs {
		cmds = append(cmds, &cobra.Command{
			Use:   s.op + " N",
			Short: s.short,
			Long:  s.short + ".\n\nInput: " + s.input + ", whitespace separated.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", args[0], err)
				}
				return a.run(cmd, s.op, n)
			},
		})
	}

	return cmds
}

// run opens the input and dispatches op on the configured element type.
func (a *app) run(cmd *cobra.Command, op string, n int) error {
	in, closeIn, err := a.openInput(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	j := job{
		op:     op,
		n:      n,
		in:     in,
		out:    cmd.OutOrStdout(),
		opts:   a.formatOptions(),
		verb:   a.cfg.Format.Verb,
		logger: a.logger,
	}
	a.logger.Debug("running", "op", op, "n", n, "element", a.cfg.Element)

	switch a.cfg.Element {
	case config.ElementInt:
		return runJob[int](j)
	case config.ElementInt64:
		return runJob[int64](j)
	case config.ElementFloat64:
		return runJob[float64](j)
	default:
		return a.cfg.Element.Validate()
	}
}

func newConfigCommand(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect dynmat configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	})

	return cfgCmd
}
