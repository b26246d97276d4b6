package puzzle_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/chromasort/colour"
	"github.com/katalvlaran/chromasort/puzzle"
)

func mustNew(t *testing.T, grid [][]string) *puzzle.Collection {
	t.Helper()
	s, err := puzzle.New(grid)
	if err != nil {
		t.Fatalf("New(%v): %v", grid, err)
	}

	return s
}

// TestNew_Errors verifies construction rejects malformed grids.
func TestNew_Errors(t *testing.T) {
	if _, err := puzzle.New([][]string{}); !errors.Is(err, puzzle.ErrGridStructure) {
		t.Errorf("empty grid: want ErrGridStructure, got %v", err)
	}
	oversize := [][]string{{"RED", "RED", "RED", "RED", "RED"}}
	if _, err := puzzle.New(oversize); !errors.Is(err, puzzle.ErrGridStructure) {
		t.Errorf("oversize container: want ErrGridStructure, got %v", err)
	}
	if _, err := puzzle.New([][]string{{"CRIMSON"}}); !errors.Is(err, colour.ErrUnknownName) {
		t.Errorf("bad name: want colour.ErrUnknownName, got %v", err)
	}
}

// TestContainer_TopRun covers run lengths at the top of the stack.
func TestContainer_TopRun(t *testing.T) {
	s := mustNew(t, [][]string{
		{"BLUE", "RED", "RED", "RED"},
		{"GREEN"},
		{},
	})
	c0, _ := s.Container(0)
	if col, run := c0.TopRun(); col != colour.Red || run != 3 {
		t.Errorf("TopRun = (%v, %d); want (RED, 3)", col, run)
	}
	c1, _ := s.Container(1)
	if col, run := c1.TopRun(); col != colour.Green || run != 1 {
		t.Errorf("TopRun = (%v, %d); want (GREEN, 1)", col, run)
	}
	c2, _ := s.Container(2)
	if _, run := c2.TopRun(); run != 0 {
		t.Errorf("empty TopRun length = %d; want 0", run)
	}
}

// TestIsValid_Rules walks the legality conditions one by one.
func TestIsValid_Rules(t *testing.T) {
	s := mustNew(t, [][]string{
		{"BLUE", "RED", "RED", "RED"}, // 0: topped RED
		{"BLUE", "BLUE", "BLUE"},      // 1: topped BLUE, one free slot
		{},                            // 2: empty
		{"RED", "RED", "RED", "RED"},  // 3: full
		{"GREEN", "?"},                // 4: hidden top
	})

	cases := []struct {
		name string
		m    puzzle.Move
		want bool
	}{
		{"self move", puzzle.Move{Src: 0, Dest: 0}, false},
		{"src out of range", puzzle.Move{Src: 5, Dest: 0}, false},
		{"dest out of range", puzzle.Move{Src: 0, Dest: -1}, false},
		{"empty source", puzzle.Move{Src: 2, Dest: 0}, false},
		{"hidden top source", puzzle.Move{Src: 4, Dest: 2}, false},
		{"colour mismatch", puzzle.Move{Src: 0, Dest: 1}, false},
		{"full destination", puzzle.Move{Src: 0, Dest: 3}, false},
		{"empty destination", puzzle.Move{Src: 0, Dest: 2}, true},
		{"matched destination", puzzle.Move{Src: 3, Dest: 0}, false}, // 0 has no free slot
		{"single-colour source to empty", puzzle.Move{Src: 1, Dest: 2}, true},
	}
	for _, tc := range cases {
		if got := s.IsValid(tc.m); got != tc.want {
			t.Errorf("%s: IsValid(%s) = %v; want %v", tc.name, tc.m, got, tc.want)
		}
	}
}

// TestAfter_PartialPour checks that only the amount that fits is poured.
func TestAfter_PartialPour(t *testing.T) {
	s := mustNew(t, [][]string{
		{"BLUE", "RED", "RED", "RED"},
		{"BLUE", "RED"},
	})
	next, err := s.After(puzzle.Move{Src: 0, Dest: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"BLUE", "RED"},
		{"BLUE", "RED", "RED", "RED"},
	}
	if got := next.Grid(); !reflect.DeepEqual(got, want) {
		t.Errorf("After = %v; want %v", got, want)
	}
	// Receiver is untouched.
	if got := s.Grid(); !reflect.DeepEqual(got, [][]string{{"BLUE", "RED", "RED", "RED"}, {"BLUE", "RED"}}) {
		t.Errorf("receiver mutated: %v", got)
	}
}

// TestAfter_PreservesMultiset asserts the colour inventory is move-invariant.
func TestAfter_PreservesMultiset(t *testing.T) {
	s := mustNew(t, [][]string{
		{"BLUE", "RED", "RED", "RED"},
		{"BLUE", "BLUE", "BLUE"},
		{},
	})
	before := s.Counts()
	for _, m := range s.Moves() {
		next, err := s.After(m)
		if err != nil {
			t.Fatalf("After(%s): %v", m, err)
		}
		if after := next.Counts(); !reflect.DeepEqual(before, after) {
			t.Errorf("After(%s) changed colour counts: %v -> %v", m, before, after)
		}
		if next.Len() != s.Len() {
			t.Errorf("After(%s) changed container count", m)
		}
	}
}

// TestAfter_Illegal confirms the sentinel surfaces.
func TestAfter_Illegal(t *testing.T) {
	s := mustNew(t, [][]string{{"RED"}, {"GREEN"}})
	if _, err := s.After(puzzle.Move{Src: 0, Dest: 1}); !errors.Is(err, puzzle.ErrIllegalMove) {
		t.Errorf("want ErrIllegalMove, got %v", err)
	}
}

// TestMoves_Order pins the deterministic successor enumeration, including
// the single-colour-to-empty exclusion.
func TestMoves_Order(t *testing.T) {
	s := mustNew(t, [][]string{
		{"BLUE", "RED", "RED", "RED"}, // mixed: may pour to 2
		{"BLUE", "BLUE", "BLUE"},      // single colour: empty-dest pour pruned
		{},
	})
	want := []puzzle.Move{{Src: 0, Dest: 2}}
	if got := s.Moves(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moves = %v; want %v", got, want)
	}
}

// TestMoves_SrcMajorOrder verifies src-major, dest-major iteration.
func TestMoves_SrcMajorOrder(t *testing.T) {
	s := mustNew(t, [][]string{
		{"RED", "GREEN"},
		{"RED", "GREEN"},
		{},
		{},
	})
	want := []puzzle.Move{
		{Src: 0, Dest: 1},
		{Src: 0, Dest: 2},
		{Src: 0, Dest: 3},
		{Src: 1, Dest: 0},
		{Src: 1, Dest: 2},
		{Src: 1, Dest: 3},
	}
	if got := s.Moves(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moves = %v; want %v", got, want)
	}
}

// TestKeyAndEqual covers canonical identity.
func TestKeyAndEqual(t *testing.T) {
	a := mustNew(t, [][]string{{"RED", "GREEN"}, {}})
	b := mustNew(t, [][]string{{"RED", "GREEN"}, {}})
	c := mustNew(t, [][]string{{}, {"RED", "GREEN"}})

	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("identical grids must be equal with identical keys")
	}
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("container order is part of identity")
	}
	if len(a.Key()) != a.Len()*puzzle.Capacity {
		t.Errorf("key length = %d; want %d", len(a.Key()), a.Len()*puzzle.Capacity)
	}
	// A filled Unknown slot is distinct from an empty slot.
	d := mustNew(t, [][]string{{"?"}, {}})
	e := mustNew(t, [][]string{{}, {}})
	if d.Key() == e.Key() {
		t.Error("Unknown item must not collide with an empty slot")
	}
}

// TestIsSolved checks the terminal predicate.
func TestIsSolved(t *testing.T) {
	solved := mustNew(t, [][]string{{"RED", "RED", "RED", "RED"}, {}})
	if !solved.IsSolved() {
		t.Error("full single-colour + empty must be solved")
	}
	partial := mustNew(t, [][]string{{"RED", "RED", "RED"}, {}})
	if partial.IsSolved() {
		t.Error("a partial stack is not solved")
	}
	mixed := mustNew(t, [][]string{{"RED", "GREEN", "RED", "GREEN"}, {}})
	if mixed.IsSolved() {
		t.Error("a mixed full stack is not solved")
	}
}

// TestMove_ReverseAndString mirrors the Move contract.
func TestMove_ReverseAndString(t *testing.T) {
	m := puzzle.Move{Src: 1, Dest: 2}
	if got := m.Reverse(); got != (puzzle.Move{Src: 2, Dest: 1}) {
		t.Errorf("Reverse = %v", got)
	}
	if got := m.String(); got != "(1, 2)" {
		t.Errorf("String = %q; want %q", got, "(1, 2)")
	}
}

// TestReplay covers clean application, mid-sequence failure, and hidden tops.
func TestReplay(t *testing.T) {
	grid := [][]string{
		{"BLUE", "RED", "RED", "RED"},
		{"BLUE", "BLUE", "BLUE"},
		{},
	}
	final, failed := puzzle.Replay(grid, []puzzle.Move{{Src: 0, Dest: 2}, {Src: 0, Dest: 1}})
	if failed != puzzle.NoFailure {
		t.Fatalf("failed at %d; want NoFailure", failed)
	}
	want := [][]string{{}, {"BLUE", "BLUE", "BLUE", "BLUE"}, {"RED", "RED", "RED"}}
	if !reflect.DeepEqual(final, want) {
		t.Errorf("final = %v; want %v", final, want)
	}

	// Second move is illegal: report the state before it, and its index.
	partial, failed := puzzle.Replay(grid, []puzzle.Move{{Src: 0, Dest: 2}, {Src: 2, Dest: 0}})
	if failed != 1 {
		t.Fatalf("failed at %d; want 1", failed)
	}
	if !reflect.DeepEqual(partial, [][]string{{"BLUE"}, {"BLUE", "BLUE", "BLUE"}, {"RED", "RED", "RED"}}) {
		t.Errorf("partial = %v", partial)
	}

	// A hidden top cannot be poured: Unknown markers survive in the output.
	hidden := [][]string{{"?", "RED"}, {"RED"}, {}}
	out, failed := puzzle.Replay(hidden, []puzzle.Move{{Src: 0, Dest: 1}, {Src: 0, Dest: 1}})
	if failed != 1 {
		t.Fatalf("failed at %d; want 1", failed)
	}
	if !reflect.DeepEqual(out, [][]string{{"UNKNOWN"}, {"RED", "RED"}, {}}) {
		t.Errorf("out = %v", out)
	}
}
