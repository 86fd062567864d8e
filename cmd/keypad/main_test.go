package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewjcooper/AdventOfCode-sub001/internal/config"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvRobots, config.EnvWorkers, config.EnvLogLevel, config.EnvInput} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut, strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCount(t *testing.T) {
	out, err := run(t, "", "count", "--robots", "2", "029A", "980A")
	require.NoError(t, err)
	assert.Equal(t, "029A: 68\n980A: 60\n", out)
}

func TestCount_DefaultRobotsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("robots: 3\n"), 0o644))

	out, err := run(t, "", "--config", path, "count", "26")
	require.NoError(t, err)
	assert.Equal(t, "26: 102\n", out)
}

func TestCount_InvalidCode(t *testing.T) {
	_, err := run(t, "", "count", "02B9A")
	assert.Error(t, err)

	_, err = run(t, "", "count", "--robots=-1", "029A")
	assert.Error(t, err)
}

func TestCount_HelpShowsConfigDefault(t *testing.T) {
	out, err := run(t, "", "count", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "(default from config)")
	assert.NotContains(t, out, "(default 2)")
}

func TestSequences(t *testing.T) {
	out, err := run(t, "", "sequences", "--robots", "0", "--limit", "0", "029A")
	require.NoError(t, err)
	lines := strings.Fields(out)
	assert.ElementsMatch(t, []string{"<A^A>^^AvvvA", "<A^A^>^AvvvA", "<A^A^^>AvvvA"}, lines)

	out, err = run(t, "", "sequences", "--robots", "2", "029A")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 1)
	assert.Len(t, strings.TrimSpace(out), 68)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "", "verify", "--robots", "1", "--limit", "0", "029A", "379A")
	require.NoError(t, err)
	assert.Contains(t, out, "029A: ok (64 sequences checked)")
	assert.Contains(t, out, "379A: ok")
}

func TestSolve_Stdin(t *testing.T) {
	out, err := run(t, "029A\n980A\n179A\n456A\n379A\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, "part1 (2 robots): 126384\npart2 (25 robots): 154115708116294\n", out)
}

func TestSolve_FileAndJSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("029A\n"), 0o644))

	cfgPath := filepath.Join(dir, "keypad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parts:\n  - name: shallow\n    robots: 0\n  - name: usual\n    robots: 2\n"), 0o644))

	out, err := run(t, "", "--config", cfgPath, "solve", "--input", input, "--workers", "2", "--json")
	require.NoError(t, err)

	var results []partResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []partResult{
		{Name: "shallow", Robots: 0, Total: 12 * 29},
		{Name: "usual", Robots: 2, Total: 68 * 29},
	}, results)
}

func TestSolve_MissingInput(t *testing.T) {
	_, err := run(t, "", "solve", "--input", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "open input")
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: -4\n"), 0o644))

	_, err := run(t, "", "--config", path, "count", "029A")
	assert.ErrorContains(t, err, "Workers")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "keypad 1.0.0"), out)
}
