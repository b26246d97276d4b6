// Package cli wires the solver library into the chromasort command:
// subcommands solve, strategy, guess, match-steps, and interactive, with
// per-subcommand --algorithm/--validate/--verbose flags.
//
// Exit codes: 0 for every domain outcome (including "no solution"), 2 for
// argument or validation errors.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/chromasort/gridio"
	"github.com/katalvlaran/chromasort/matchsteps"
	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/resolver"
	"github.com/katalvlaran/chromasort/search"
	"github.com/katalvlaran/chromasort/strategy"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 2
)

// App carries the command's streams so tests can capture them.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewApp binds an App to the process streams.
func NewApp() *App {
	return &App{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

// common holds the flags shared by every subcommand.
type common struct {
	algorithm string
	validate  bool
	verbose   bool
}

// register installs the shared flags on fs, with short aliases matching
// the long spellings.
func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.algorithm, "algorithm", "BFS", "search algorithm: BFS or DFS")
	fs.StringVar(&c.algorithm, "a", "BFS", "shorthand for --algorithm")
	fs.BoolVar(&c.validate, "validate", false, "reject puzzles whose colour counts are not exactly four (applied by solve only)")
	fs.BoolVar(&c.validate, "v", false, "shorthand for --validate")
	fs.BoolVar(&c.verbose, "verbose", false, "show additional logging while searching")
}

// algo resolves the flag value, case-insensitively.
func (c *common) algo() (search.Algorithm, error) {
	return search.ParseAlgorithm(strings.ToUpper(c.algorithm))
}

// initLogging raises klog verbosity when --verbose is set.
func (c *common) initLogging() {
	if !c.verbose {
		return
	}
	var fs flag.FlagSet
	klog.InitFlags(&fs)
	_ = fs.Set("v", "1")
	_ = fs.Set("logtostderr", "true")
}

// Run dispatches args and returns the process exit code. An unrecognised
// first argument is treated as a puzzle path for solve, matching the
// historical single-command behaviour.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.Stderr, "Usage: chromasort <solve|strategy|guess|match-steps|interactive> [options] ARGS...")
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "solve":
		return a.runSolve(rest)
	case "strategy":
		return a.runStrategy(rest)
	case "guess":
		return a.runGuess(rest)
	case "match-steps":
		return a.runMatchSteps(rest)
	case "interactive":
		return a.runInteractive(rest)
	default:
		// No subcommand named: solve by default.
		return a.runSolve(args)
	}
}

// parse applies fs to args and reports usage problems on stderr.
func (a *App) parse(fs *flag.FlagSet, args []string) ([]string, bool) {
	fs.SetOutput(a.Stderr)
	if err := fs.Parse(args); err != nil {
		return nil, false
	}

	return fs.Args(), true
}

// runSolve loads a fully known puzzle and prints the search outcome.
func (a *App) runSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
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

	var opts []gridio.Option
	if c.validate {
		opts = append(opts, gridio.WithValidation())
	}
	start, err := gridio.LoadFile(rest[0], opts...)
	if err != nil {
		fmt.Fprintln(a.Stderr, "Invalid PUZZLE:", err)
		return ExitUsage
	}

	render(a.Stdout, start)
	fmt.Fprintln(a.Stdout)
	if algo == search.AlgorithmBFS {
		fmt.Fprintf(a.Stdout, "Searching using Breadth-First Search\n\n")
	} else {
		fmt.Fprintf(a.Stdout, "Searching using Depth-First Search\n\n")
	}

	res, err := search.Run(algo, start, search.WithOnVisit(visitLogger()))
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitUsage
	}
	if res == nil {
		fmt.Fprintln(a.Stdout, "Cannot be solved :(")
		return ExitOK
	}

	fmt.Fprintf(a.Stdout, "solved in %d moves\n", len(res.Moves))
	render(a.Stdout, res.Final)
	fmt.Fprintln(a.Stdout)
	printMoves(a.Stdout, res.Moves, 0)

	return ExitOK
}

// visitLogger reports search progress through klog; silent unless --verbose
// raised the verbosity.
func visitLogger() func(s *puzzle.Collection, depth int) error {
	visited := 0

	return func(_ *puzzle.Collection, depth int) error {
		visited++
		if visited%10000 == 0 {
			klog.V(1).Infof("search: %d positions discovered (depth %d)", visited, depth)
		}
		return nil
	}
}

// replayPrefix applies the safe moves to the raw grid, keeping hidden
// markers in place. The returned index is puzzle.NoFailure when every move
// simulated.
func replayPrefix(raw [][]string, out strategy.Outcome) ([][]string, int) {
	return puzzle.Replay(raw, out.SafeMoves)
}

// runStrategy analyses a puzzle that may contain hidden items.
func (a *App) runStrategy(args []string) int {
	fs := flag.NewFlagSet("strategy", flag.ContinueOnError)
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

	raw, err := gridio.LoadRawFile(rest[0])
	if err != nil {
		fmt.Fprintln(a.Stderr, "Invalid PUZZLE:", err)
		return ExitUsage
	}

	solutions, err := strategy.FindAllSolutions(raw, algo)
	if err != nil {
		// Resolver preconditions are domain diagnostics, not usage errors.
		fmt.Fprintln(a.Stdout, "Error:", err)
		fmt.Fprintln(a.Stdout, "No candidate completions exist.")
		return ExitOK
	}

	a.reportOutcome(raw, strategy.Analyze(raw, solutions))

	return ExitOK
}

// reportOutcome prints the aggregate advice for one analysed grid.
func (a *App) reportOutcome(raw [][]string, out strategy.Outcome) {
	switch out.Kind {
	case strategy.NoSolution:
		fmt.Fprintln(a.Stdout, "No solutions found. Puzzle may be unsolvable.")

	case strategy.Unique:
		fmt.Fprintln(a.Stdout, "Unique solution: hidden items deduced.")
		for _, d := range out.Deduced {
			fmt.Fprintf(a.Stdout, "  Container %d, position %d: %s\n", d.Row, d.Col, d.Colour)
		}
		fmt.Fprintf(a.Stdout, "solved in %d moves\n", len(out.SafeMoves))
		printMoves(a.Stdout, out.SafeMoves, 0)

	case strategy.Prefix:
		fmt.Fprintf(a.Stdout, "Valid solutions: %d\n", len(out.Solutions))
		fmt.Fprintf(a.Stdout, "Guaranteed safe moves: %d\n", len(out.SafeMoves))
		if len(out.SafeMoves) == 0 {
			fmt.Fprintln(a.Stdout, "The first move differs across solutions.")
			fmt.Fprintln(a.Stdout, "First moves across solutions:")
			for _, mc := range out.FirstMoves {
				fmt.Fprintf(a.Stdout, "  Container %d -> %d (works in %d/%d cases)\n",
					mc.Move.Src, mc.Move.Dest, mc.Count, len(out.Solutions))
			}
			return
		}
		printMoves(a.Stdout, out.SafeMoves, 0)

		// Show the raw position after the safe prefix, hidden markers kept.
		after, failed := replayPrefix(raw, out)
		fmt.Fprintln(a.Stdout, "State after the safe moves:")
		renderGrid(a.Stdout, after)
		if failed >= 0 {
			fmt.Fprintf(a.Stdout, "(simulation stopped at move %d: hidden item reached)\n", failed+1)
		}
	}
}

// runGuess writes every solvable completion of a mystery puzzle to
// <puzzle>_solved/<i>.json.
func (a *App) runGuess(args []string) int {
	fs := flag.NewFlagSet("guess", flag.ContinueOnError)
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

	raw, err := gridio.LoadRawFile(rest[0])
	if err != nil {
		fmt.Fprintln(a.Stderr, "Invalid PUZZLE:", err)
		return ExitUsage
	}
	data := resolver.Inspect(raw)
	if len(data.Unknowns) == 0 {
		fmt.Fprintln(a.Stdout, "No hidden items found. Use solve for fully known puzzles.")
		return ExitOK
	}
	need, err := resolver.NeededColours(data)
	if err != nil {
		fmt.Fprintln(a.Stdout, "Error:", err)
		return ExitOK
	}
	fmt.Fprintf(a.Stdout, "Solving for %d hidden slots.\n", len(data.Unknowns))

	solutions := resolver.SolveAll(resolver.Candidates(data, need), algo)

	base := strings.TrimSuffix(rest[0], filepath.Ext(rest[0]))
	outDir := base + "_solved"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitUsage
	}
	for i, s := range solutions {
		path := filepath.Join(outDir, fmt.Sprintf("%d.json", i+1))
		if err := gridio.SaveGrid(path, s.Grid); err != nil {
			fmt.Fprintln(a.Stderr, err)
			return ExitUsage
		}
		fmt.Fprintf(a.Stdout, "Found solution for configuration #%d\n", i+1)
		fmt.Fprintf(a.Stdout, "  Saved to %s\n", path)
	}
	fmt.Fprintf(a.Stdout, "Finished. Found %d valid configurations.\n", len(solutions))

	return ExitOK
}

// runMatchSteps compares first moves of every puzzle in a folder against a
// reference.
func (a *App) runMatchSteps(args []string) int {
	fs := flag.NewFlagSet("match-steps", flag.ContinueOnError)
	var c common
	c.register(fs)
	rest, ok := a.parse(fs, args)
	if !ok {
		return ExitUsage
	}
	if len(rest) < 2 {
		fmt.Fprintln(a.Stderr, "Usage: chromasort match-steps [options] FOLDER REFERENCE [N]")
		return ExitUsage
	}
	algo, err := c.algo()
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitUsage
	}
	c.initLogging()

	n := 2
	if len(rest) >= 3 {
		if _, err := fmt.Sscanf(rest[2], "%d", &n); err != nil || n < 1 {
			fmt.Fprintln(a.Stderr, "N must be a positive integer")
			return ExitUsage
		}
	}

	report, err := matchsteps.Match(context.Background(), rest[0], rest[1], n, algo)
	if err != nil {
		if errors.Is(err, matchsteps.ErrReferenceUnsolvable) {
			fmt.Fprintf(a.Stdout, "Reference puzzle %s has no solution using %s.\n", rest[1], algo)
			return ExitOK
		}
		fmt.Fprintln(a.Stderr, err)
		return ExitUsage
	}

	fmt.Fprintf(a.Stdout, "Reference first %d moves: %v\n", n, report.RefMoves)
	for _, r := range report.Results {
		switch r.Verdict {
		case matchsteps.Unreadable:
			fmt.Fprintf(a.Stdout, "Skipping %s: cannot read (%v)\n", r.Name, r.Err)
		case matchsteps.Unsolvable:
			fmt.Fprintf(a.Stdout, "%s: no solution\n", r.Name)
		case matchsteps.FullMatch:
			fmt.Fprintf(a.Stdout, "MATCH %s: first %d moves equal\n", r.Name, n)
		case matchsteps.Partial:
			fmt.Fprintf(a.Stdout, "PARTIAL %s: %d/%d moves match\n", r.Name, r.Common, n)
		default:
			fmt.Fprintf(a.Stdout, "DIFFER %s: 0/%d moves match\n", r.Name, n)
		}
	}
	fmt.Fprintf(a.Stdout, "Done. %d full matches found.\n", len(report.Matches))

	return ExitOK
}
