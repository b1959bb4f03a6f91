package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-solver/maze"
	"github.com/lixenwraith/maze-solver/render"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSolveBuiltin(t *testing.T) {
	code, out, _ := run(t, "solve", "one", "--quiet")
	assert.Equal(t, exitFound, code)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12, "final grid, blank line, summary")
	assert.Equal(t, "####S#....", lines[0])
	assert.Equal(t, "moves: 26 status: goal_found path: 19", lines[11])
}

// TestSolveShowsMazeFirst verifies the unsolved maze precedes the first expansion
func TestSolveShowsMazeFirst(t *testing.T) {
	l, err := maze.Builtin("one")
	require.NoError(t, err)

	code, out, _ := run(t, "solve", "one")
	assert.Equal(t, exitFound, code)
	assert.True(t, strings.HasPrefix(out, l.String()+"\n"))
	// preview, one frame per non-goal pop, final frame: 27 frames of 11 lines plus the summary
	assert.Equal(t, 27*11+1, strings.Count(out, "\n"))
}

func TestSolveFrontiersAgree(t *testing.T) {
	_, sorted, _ := run(t, "solve", "two")
	code, heaped, _ := run(t, "solve", "two", "--frontier", "heap")
	assert.Equal(t, exitFound, code)
	assert.Equal(t, sorted, heaped)
}

func TestSolveMaxMoves(t *testing.T) {
	code, out, _ := run(t, "solve", "two", "--max-moves", "3", "-q")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "moves: 3 status: exhausted (interrupted)")
}

func TestSolveFileNoPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walled.txt")
	require.NoError(t, os.WriteFile(path, []byte("S#E;..#"), 0o644))

	code, out, _ := run(t, "solve", "--file", path, "--sep", ";", "-q")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "status: exhausted")
	assert.NotContains(t, out, "interrupted")
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown maze", []string{"solve", "three"}, "unknown maze"},
		{"no maze", []string{"solve"}, "no maze given"},
		{"bad separator", []string{"solve", "one", "--sep", ";;"}, "single character"},
		{"bad frontier", []string{"solve", "one", "--frontier", "queue"}, "unknown frontier"},
		{"bad style", []string{"solve", "one", "--style", "fancy"}, "unknown style"},
		{"negative bound", []string{"solve", "one", "--max-moves", "-1"}, "must not be negative"},
		{"missing file", []string{"solve", "--file", "/nonexistent/maze.txt"}, "read maze"},
		{"bad log level", []string{"--log-level", "loud", "list"}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(t, tt.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestSolveDebugLogging(t *testing.T) {
	code, _, stderr := run(t, "--log-level", "debug", "solve", "one", "-q")
	assert.Equal(t, exitFound, code)
	assert.Contains(t, stderr, "msg=expanded")
	assert.Contains(t, stderr, "msg=\"search finished\"")
}

func TestSolveColor(t *testing.T) {
	code, out, _ := run(t, "solve", "one", "--style", "color", "-q")
	assert.Equal(t, exitFound, code)
	assert.Contains(t, out, "moves: 26 status: goal_found path: 19")
}

func TestList(t *testing.T) {
	code, out, _ := run(t, "list")
	assert.Equal(t, exitFound, code)
	assert.Equal(t, "one      10x10\ntwo      10x10\n", out)
}

func TestLegend(t *testing.T) {
	code, out, _ := run(t, "legend")
	assert.Equal(t, exitFound, code)
	assert.Equal(t, render.Legend(), out)
}

func TestGenerate(t *testing.T) {
	code, out, stderr := run(t, "generate", "--rows", "11", "--cols", "15", "--seed", "7", "--braid", "0.3")
	require.Equal(t, exitFound, code)

	l, err := maze.Parse(strings.TrimSpace(out), maze.DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, 11, l.Rows)
	assert.Equal(t, 15, l.Cols)
	assert.Contains(t, stderr, "shortest path: ")

	_, again, _ := run(t, "generate", "--rows", "11", "--cols", "15", "--seed", "7", "--braid", "0.3")
	assert.Equal(t, out, again, "same seed, same maze")
}
