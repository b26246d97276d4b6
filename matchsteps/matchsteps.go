// Package matchsteps compares the opening moves of every puzzle in a
// folder against a reference puzzle.
//
// Each candidate file is solved independently, so the folder is processed
// concurrently; results land in per-file slots and the report is assembled
// in sorted filename order, making the output identical to a sequential
// run.
package matchsteps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/chromasort/gridio"
	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/search"
)

// Sentinel errors for the comparison run.
var (
	// ErrFolderNotFound is returned when the candidate folder is missing
	// or not a directory.
	ErrFolderNotFound = errors.New("matchsteps: folder not found")

	// ErrReferenceUnsolvable is returned when the reference puzzle has no
	// solution under the chosen algorithm.
	ErrReferenceUnsolvable = errors.New("matchsteps: reference puzzle has no solution")
)

// Verdict classifies one candidate file against the reference.
type Verdict uint8

const (
	// Unreadable: the file could not be read or decoded.
	Unreadable Verdict = iota
	// Unsolvable: the puzzle has no solution under the algorithm.
	Unsolvable
	// Differ: not even the first move matches.
	Differ
	// Partial: a proper, non-empty prefix of the compared moves matches.
	Partial
	// FullMatch: all compared moves are equal.
	FullMatch
)

// FileResult is the verdict for one candidate file.
type FileResult struct {
	Name    string
	Verdict Verdict
	// Common is the length of the matching prefix (meaningful for
	// Differ/Partial/FullMatch).
	Common int
	// Err carries the read/decode failure for Unreadable.
	Err error
}

// Report is the outcome of one folder comparison.
type Report struct {
	// RefMoves holds the reference's first N moves.
	RefMoves []puzzle.Move
	// Results lists every .json candidate in sorted filename order.
	Results []FileResult
	// Matches are the filenames with a FullMatch verdict, in order.
	Matches []string
}

// firstMoves solves grid and returns up to n opening moves, or nil when no
// solution exists.
func firstMoves(grid [][]string, n int, algo search.Algorithm) ([]puzzle.Move, error) {
	start, err := puzzle.New(grid)
	if err != nil {
		return nil, err
	}
	res, err := search.Run(algo, start)
	if err != nil || res == nil {
		return nil, err
	}
	if len(res.Moves) < n {
		n = len(res.Moves)
	}

	return res.Moves[:n], nil
}

// Match solves every .json file in folder and compares its first n moves
// to the reference's. Candidate files are solved concurrently; the report
// order is sorted filename order regardless.
//
// Returns ErrFolderNotFound or ErrReferenceUnsolvable for unusable inputs,
// or the loader's error when the reference file cannot be read; per-file
// failures are verdicts, not errors.
func Match(ctx context.Context, folder, reference string, n int, algo search.Algorithm) (*Report, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
	}

	refGrid, err := gridio.LoadRawFile(reference)
	if err != nil {
		return nil, err
	}
	refMoves, err := firstMoves(refGrid, n, algo)
	if err != nil || refMoves == nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrReferenceUnsolvable, reference, algo)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	report := &Report{RefMoves: refMoves, Results: make([]FileResult, len(names))}
	solved := atomic.NewInt64(0)

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = compare(filepath.Join(folder, name), name, refMoves, algo)
			if report.Results[i].Verdict >= Differ {
				solved.Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	klog.V(1).Infof("matchsteps: %d/%d candidates solved", solved.Load(), len(names))

	for _, r := range report.Results {
		if r.Verdict == FullMatch {
			report.Matches = append(report.Matches, r.Name)
		}
	}

	return report, nil
}

// compare produces the verdict for one candidate file.
func compare(path, name string, refMoves []puzzle.Move, algo search.Algorithm) FileResult {
	grid, err := gridio.LoadRawFile(path)
	if err != nil {
		return FileResult{Name: name, Verdict: Unreadable, Err: err}
	}
	moves, err := firstMoves(grid, len(refMoves), algo)
	if err != nil || moves == nil {
		return FileResult{Name: name, Verdict: Unsolvable}
	}

	common := 0
	for i := 0; i < len(refMoves) && i < len(moves); i++ {
		if refMoves[i] != moves[i] {
			break
		}
		common++
	}

	switch {
	case common == len(refMoves):
		return FileResult{Name: name, Verdict: FullMatch, Common: common}
	case common > 0:
		return FileResult{Name: name, Verdict: Partial, Common: common}
	default:
		return FileResult{Name: name, Verdict: Differ, Common: 0}
	}
}
