// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/katalvlaran/dynmat/sequence"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool
	input   string

	cfg    *config.Config
	logger *log.Logger
}

// newRootCommand builds the dynmat command tree.
func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "dynmat",
		Short: "Vector and square-matrix arithmetic on the command line",
		Long: `dynmat reads whitespace-separated operands, applies one operation and
writes the result.

Vectors are N tokens, matrices N×N tokens in row-major order. Line
breaks are insignificant on input; matrices are printed one row per line.

Examples:
  echo "5 4 3  1 2 3" | dynmat dot 3
  dynmat matmul 2 --input operands.txt
  DYNMAT_ELEMENT=float64 dynmat vadd 2 <<< "0.5 1  1.5 2"
  dynmat config show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/dynmat/config.toml)")
	root.PersistentFlags().StringVarP(&a.input, "input", "i", "", "read operands from file instead of stdin")

	root.AddCommand(newVectorCommands(a)...)
	root.AddCommand(newMatrixCommands(a)...)
	root.AddCommand(newConfigCommand(a))

	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(stderr io.Writer) error {
	config.SetConfigFilePathOverride(a.cfgFile)
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Verbose = true
	}
	a.cfg = cfg

	a.logger = log.NewWithOptions(stderr, log.Options{
		Prefix: config.AppName,
		Level:  cfg.LogLevel(),
	})
	a.logger.Debug("configuration loaded", "element", cfg.Element, "verb", cfg.Format.Verb)

	return nil
}

// openInput returns the operand stream: --input when set, stdin otherwise.
// The returned closer is never nil.
func (a *app) openInput(cmd *cobra.Command) (io.Reader, func() error, error) {
	if a.input == "" {
		return sequence.RuneScanner(cmd.InOrStdin()), func() error { return nil }, nil
	}
	f, err := os.Open(a.input)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return sequence.RuneScanner(f), f.Close, nil
}

// formatOptions maps the configured format onto sequence options.
func (a *app) formatOptions() []sequence.FormatOption {
	return []sequence.FormatOption{
		sequence.WithSeparator(a.cfg.Format.Separator),
		sequence.WithVerb(a.cfg.Format.Verb),
	}
}
