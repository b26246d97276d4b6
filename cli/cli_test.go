package cli_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromasort/cli"
)

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

// run invokes the command with captured streams.
func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	app := &cli.App{Stdout: &out, Stderr: &errb, Stdin: strings.NewReader(stdin)}
	code = app.Run(args)

	return code, out.String(), errb.String()
}

// TestSolve_NoArguments is a usage error.
func TestSolve_NoArguments(t *testing.T) {
	code, _, stderr := run(t, "", "solve")
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr, "Missing argument 'PUZZLE'.")
}

// TestSolve_BFS solves the single-pour fixture and prints numbered moves.
func TestSolve_BFS(t *testing.T) {
	code, stdout, _ := run(t, "", "solve", "--algorithm", "bfs", "testdata/single_pour.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "Searching using Breadth-First Search")
	require.Contains(t, stdout, "solved in 2 moves")
	require.Contains(t, stdout, "1. Container 0 -> 2")
	require.Contains(t, stdout, "2. Container 0 -> 1")
}

// TestSolve_DFS shows the DFS banner.
func TestSolve_DFS(t *testing.T) {
	code, stdout, _ := run(t, "", "solve", "-a", "DFS", "testdata/single_pour.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "Searching using Depth-First Search")
	require.Contains(t, stdout, "solved in 2 moves")
}

// TestSolve_BadPuzzle is a domain outcome: exit 0 with the sad banner.
func TestSolve_BadPuzzle(t *testing.T) {
	code, stdout, _ := run(t, "", "solve", "testdata/bad.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "Cannot be solved :(")
}

// TestSolve_BadPuzzleValidated fails validation with a usage exit.
func TestSolve_BadPuzzleValidated(t *testing.T) {
	code, _, stderr := run(t, "", "solve", "--validate", "testdata/bad.json")
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr, "Invalid PUZZLE:")
}

// TestSolve_DefaultCommand accepts a bare puzzle path.
func TestSolve_DefaultCommand(t *testing.T) {
	code, stdout, _ := run(t, "", "testdata/debug.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "solved in 3 moves")
}

// TestSolve_BadAlgorithm rejects unknown algorithm spellings.
func TestSolve_BadAlgorithm(t *testing.T) {
	code, _, stderr := run(t, "", "solve", "-a", "IDDFS", "testdata/debug.json")
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr, "unknown algorithm")
}

// TestStrategy_UniqueDeduction deduces the two hidden REDs.
func TestStrategy_UniqueDeduction(t *testing.T) {
	code, stdout, _ := run(t, "", "strategy", "testdata/mystery.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "hidden items deduced")
	require.Contains(t, stdout, "Container 0, position 0: RED")
	require.Contains(t, stdout, "Container 0, position 1: RED")
}

// TestStrategy_MissingArgument is a usage error.
func TestStrategy_MissingArgument(t *testing.T) {
	code, _, stderr := run(t, "", "strategy")
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr, "Missing argument 'PUZZLE'.")
}

// TestGuess_WritesCompletions saves the solvable completions next to the
// puzzle file.
func TestGuess_WritesCompletions(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/mystery.json"
	data := `[["?", "?", "RED", "RED"], ["BLUE", "BLUE", "BLUE", "BLUE"], []]`
	require.NoError(t, writeFile(path, data))

	code, stdout, _ := run(t, "", "guess", path)
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "Found 1 valid configurations.")
	require.FileExists(t, dir+"/mystery_solved/1.json")
}

// TestInteractive_QuitImmediately ends the session in its first iteration:
// the mystery fixture has a single solvable completion, so the session
// stops before the prompt that would read the queued "q".
func TestInteractive_QuitImmediately(t *testing.T) {
	code, stdout, _ := run(t, "q\n", "interactive", "testdata/mystery.json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, "Session complete.")
}

// TestUnknownStream exercises the no-argument usage line.
func TestUnknownStream(t *testing.T) {
	code, _, stderr := run(t, "")
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr, "Usage:")
}
