package cli

import (
	"bufio"
	"flag"
	"fmt"
	"reflect"

	"github.com/katalvlaran/chromasort/gridio"
	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/search"
	"github.com/katalvlaran/chromasort/strategy"
)

// runInteractive drives an iterative strategy session: print the safe
// moves, let the player execute them in the game and update the puzzle
// file with whatever was revealed, reload, repeat.
func (a *App) runInteractive(args []string) int {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	var c common
	c.register(fs)
	rest, ok := a.parse(fs, args)
	if !ok {
		return ExitUsage
	}
	if len(rest) < 1 {
		fmt.Fprintln(a.Stderr, "Missing argument 'PUZZLE'.")
		return ExitUsage
	}
	algo, err := c.algo()
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitUsage
	}
	c.initLogging()

	path := rest[0]
	current, err := gridio.LoadRawFile(path)
	if err != nil {
		fmt.Fprintln(a.Stderr, "Invalid PUZZLE:", err)
		return ExitUsage
	}

	in := bufio.NewScanner(a.Stdin)
	totalMoves := 0
	for iteration := 1; ; iteration++ {
		fmt.Fprintf(a.Stdout, "--- Iteration %d ---\n", iteration)
		hidden := countHidden(current)
		fmt.Fprintf(a.Stdout, "Hidden positions remaining: %d\n", hidden)

		if hidden == 0 {
			a.finishKnown(current, algo)
			break
		}

		solutions, err := strategy.FindAllSolutions(current, algo)
		if err != nil {
			fmt.Fprintln(a.Stdout, "Error:", err)
			break
		}
		out := strategy.Analyze(current, solutions)

		if out.Kind == strategy.NoSolution {
			fmt.Fprintln(a.Stdout, "No solutions found from this state.")
			break
		}
		if out.Kind == strategy.Unique {
			fmt.Fprintln(a.Stdout, "Mystery solved: only one completion works.")
			for _, d := range out.Deduced {
				fmt.Fprintf(a.Stdout, "  Container %d, position %d: %s\n", d.Row, d.Col, d.Colour)
			}
			fmt.Fprintf(a.Stdout, "Remaining moves: %d\n", len(out.SafeMoves))
			printMoves(a.Stdout, out.SafeMoves, totalMoves)
			break
		}

		fmt.Fprintf(a.Stdout, "Valid solution paths: %d\n", len(out.Solutions))
		if len(out.SafeMoves) == 0 {
			fmt.Fprintln(a.Stdout, "No common moves at this point. First moves across solutions:")
			for _, mc := range out.FirstMoves {
				fmt.Fprintf(a.Stdout, "  Container %d -> %d (%d/%d solutions)\n",
					mc.Move.Src, mc.Move.Dest, mc.Count, len(out.Solutions))
			}
			break
		}

		fmt.Fprintf(a.Stdout, "Execute these %d move(s) now:\n", len(out.SafeMoves))
		printMoves(a.Stdout, out.SafeMoves, totalMoves)

		after, failed := puzzle.Replay(current, out.SafeMoves)
		fmt.Fprintln(a.Stdout, "Expected state afterwards:")
		a.renderAnnotated(current, after)
		if failed != puzzle.NoFailure {
			fmt.Fprintf(a.Stdout, "(simulation stopped at move %d: hidden item reached)\n", failed+1)
		}

		fmt.Fprint(a.Stdout, "Execute the moves, update the file with revealed colours, then press enter (q to quit): ")
		if !in.Scan() || in.Text() == "q" {
			break
		}

		reloaded, err := gridio.LoadRawFile(path)
		if err != nil {
			fmt.Fprintln(a.Stdout, "Reload failed:", err)
			break
		}
		if reflect.DeepEqual(reloaded, current) {
			fmt.Fprintln(a.Stdout, "Warning: puzzle state has not changed.")
		}
		current = reloaded
		totalMoves += len(out.SafeMoves)
	}

	fmt.Fprintf(a.Stdout, "Session complete. Guaranteed moves executed: %d\n", totalMoves)

	return ExitOK
}

// finishKnown ends the session once every item is visible.
func (a *App) finishKnown(grid [][]string, algo search.Algorithm) {
	start, err := puzzle.New(grid)
	if err != nil {
		fmt.Fprintln(a.Stdout, "Error:", err)
		return
	}
	if start.IsSolved() {
		fmt.Fprintln(a.Stdout, "Puzzle already solved.")
		return
	}
	res, err := search.Run(algo, start)
	if err != nil {
		fmt.Fprintln(a.Stdout, "Error:", err)
		return
	}
	if res == nil {
		fmt.Fprintln(a.Stdout, "Cannot be solved :(")
		return
	}
	fmt.Fprintf(a.Stdout, "solved in %d moves\n", len(res.Moves))
	printMoves(a.Stdout, res.Moves, 0)
}

// renderAnnotated prints the simulated grid, flagging containers that
// changed relative to the current one.
func (a *App) renderAnnotated(before, after [][]string) {
	for i, row := range after {
		changed := i >= len(before) || !reflect.DeepEqual(before[i], row)
		suffix := ""
		if changed {
			suffix = " (changed)"
		}
		line := renderGridRow(i, row)
		fmt.Fprintf(a.Stdout, "%s%s\n", line, suffix)
	}
}

// countHidden tallies hidden markers in a raw grid.
func countHidden(grid [][]string) int {
	n := 0
	for _, row := range grid {
		for _, item := range row {
			if item == "?" || item == "UNKNOWN" {
				n++
			}
		}
	}

	return n
}
