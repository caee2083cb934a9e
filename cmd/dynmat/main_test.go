// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and stdin, isolated from any user
// config, and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { config.SetConfigFilePathOverride("") })

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestVersionString(t *testing.T) {
	orig, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = orig, origCommit })

	Version = "dev"
	require.Equal(t, "dev (built from source)", versionString())

	Version, Commit = "v0.3.0", "abc1234"
	require.Equal(t, "v0.3.0 (commit: abc1234)", versionString())
}

func TestVectorCommands(t *testing.T) {
	tests := []struct {
		args  []string
		stdin string
		want  string
	}{
		{[]string{"dot", "3"}, "5 4 3\n1 2 3\n", "22\n"},
		{[]string{"vadd", "3"}, "5 4 3 1 2 3", "6 6 6\n"},
		{[]string{"vsub", "3"}, "5 4 3 1 2 3", "4 2 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := execute(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestMatrixCommands(t *testing.T) {
	const a = "1 2 3 1\n1 1 1 1\n1 2 2 2\n2 2 3 3\n"
	tests := []struct {
		args  []string
		stdin string
		want  string
	}{
		{[]string{"matvec", "4"}, a + "1 2 1 1\n", "9 5 9 12\n"},
		{[]string{"madd", "2"}, "1 2 3 4  4 3 2 1", "5 5\n5 5\n"},
		{[]string{"msub", "2"}, "1 2 3 4  4 3 2 1", "-3 -1\n1 3\n"},
		{[]string{"matmul", "2"}, "1 2 3 4  0 1 1 0", "2 1\n4 3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := execute(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestFloatElementAndFormat(t *testing.T) {
	t.Setenv("DYNMAT_ELEMENT", "float64")
	t.Setenv("DYNMAT_FORMAT_VERB", "%.2f")
	t.Setenv("DYNMAT_FORMAT_SEPARATOR", ",")

	out, _, err := execute(t, "0.5 1 1.5 2", "vadd", "2")
	require.NoError(t, err)
	require.Equal(t, "2.00,3.00\n", out)
}

func TestInputFileAndConfigFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "operands.txt")
	require.NoError(t, os.WriteFile(in, []byte("1 2 3 4\n1 0 0 1\n"), 0o644))
	cfg := filepath.Join(dir, "dynmat.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("element = \"int\"\n[format]\nseparator = \"\\t\"\n"), 0o644))

	out, _, err := execute(t, "", "matmul", "2", "--input", in, "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "1\t2\n3\t4\n", out)

	_, _, err = execute(t, "", "dot", "2", "--input", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := execute(t, "1 2 3", "dot", "2")
	require.ErrorContains(t, err, "b: Sequence.Read")

	_, _, err = execute(t, "1 2 x 4", "vadd", "2")
	require.ErrorContains(t, err, "invalid argument")

	_, _, err = execute(t, "", "dot", "zero")
	require.ErrorContains(t, err, "invalid size")

	_, _, err = execute(t, "", "madd", "0")
	require.ErrorContains(t, err, "invalid size")

	_, _, err = execute(t, "", "dot")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := execute(t, "1 1 1 1", "vadd", "2", "--verbose")
	require.NoError(t, err)
	require.Equal(t, "2 2\n", out)
	require.Contains(t, stderr, "running")
	require.Contains(t, stderr, "op=vadd")
}

func TestConfigShow(t *testing.T) {
	out, _, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "int64")
	require.Contains(t, out, "[format]")

	t.Setenv("DYNMAT_ELEMENT", "complex")
	_, _, err = execute(t, "", "config", "show")
	require.ErrorIs(t, err, config.ErrInvalidElement)
}
