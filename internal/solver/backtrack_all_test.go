package solver

import (
	"context"
	"testing"

	"svw.info/sudokuweb/internal/domain"
)

func TestSolveAllFindsUniqueSolution(t *testing.T) {
	s := NewBacktrackingSolver()
	b := &domain.Board{Values: sample}
	sols, st, err := s.SolveAll(context.Background(), b, 2)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("canonical puzzle has %d solutions under limit 2, want exactly 1", len(sols))
	}
	if sols[0].Values != sampleSolution {
		t.Fatal("collected solution differs from the known one")
	}
	if b.Values != sample {
		t.Fatal("SolveAll must not mutate its input board")
	}
	t.Logf("probe nodes=%d dur=%v", st.Nodes, st.Duration)
}

func TestSolveAllDetectsAmbiguousRectangle(t *testing.T) {
	// Clearing a deadly rectangle leaves two completions: the digit
	// pair can be placed straight or swapped with every unit still
	// satisfied. Cells (3,5)/(4,8) hold 1 and (3,8)/(4,5) hold 3 in the
	// canonical solution, spanning two blocks of the same band.
	grid := sampleSolution
	for _, cell := range [][2]int{{3, 5}, {3, 8}, {4, 5}, {4, 8}} {
		grid[cell[0]][cell[1]] = 0
	}
	s := NewBacktrackingSolver()
	b := &domain.Board{Values: grid}

	sols, _, err := s.SolveAll(context.Background(), b, 2)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(sols) != 2 {
		t.Fatalf("ambiguous board yielded %d solutions, want the limit of 2", len(sols))
	}
	if sols[0].Values == sols[1].Values {
		t.Fatal("solutions must be distinct boards, not aliases")
	}

	unique, _, err := s.Unique(context.Background(), b)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("ambiguous board reported as unique")
	}
}

func TestUniqueOnCanonicalPuzzle(t *testing.T) {
	s := NewBacktrackingSolver()
	unique, _, err := s.Unique(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !unique {
		t.Fatal("canonical puzzle must be unique")
	}
}

func TestSolveAllLimitOnEmptyBoard(t *testing.T) {
	// An empty board has a huge solution space; the limit must stop
	// the search long before exhausting it.
	s := NewBacktrackingSolver()
	var empty domain.Board
	sols, _, err := s.SolveAll(context.Background(), &empty, 3)
	if err != nil {
		t.Fatalf("SolveAll failed: %v", err)
	}
	if len(sols) != 3 {
		t.Fatalf("got %d solutions, want the limit of 3", len(sols))
	}
}
