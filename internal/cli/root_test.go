package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"solve", "format", "serve", "tools", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "output", "verbose", "no-color", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_Solve(t *testing.T) {
	out, _, err := run(t, "solve", "--no-color", "x^2 + 2x + 1 = 0")
	require.NoError(t, err)

	want := "Step 1 : convert to ax^2+bx+c=0\n" +
		"  x^2+2x^1+1=0\n" +
		"Step 2 : a!=0 => quadratic\n" +
		"  Delta: 0\n" +
		"  Delta=0 => x=-b/2a\n" +
		"Solution: x=-1\n"
	assert.Equal(t, want, out)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polysolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))

	out, _, err := run(t, "solve", "--config", path, "2x = 4")
	require.NoError(t, err)
	assert.Contains(t, out, `"canonical": "2x^1-4=0"`)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "solve", "-v", "--no-color", "x = 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Solution: x=1")
	assert.Contains(t, errOut, "solved")
}

func TestRoot_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "solve", "-o", "yaml", "x = 1")
	require.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "polysolve v"+Version+"\n", out)
}
