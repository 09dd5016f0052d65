package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokuweb/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver is the backtracking search engine. Callers must not share a
// Board between concurrent calls; every method works on its own copy.
type Solver interface {
	// Solve finds the first solution of b, or errors if none exists.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// SolveAll collects distinct solutions of b, at most limit of them.
	SolveAll(ctx context.Context, b *domain.Board, limit int) ([]domain.Board, Stats, error)
	// Unique reports whether b has exactly one solution.
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
	// Fill completes b trying digits in random order, for varied solved boards.
	Fill(ctx context.Context, rng *rand.Rand, b *domain.Board) (*domain.Board, Stats, error)
}

// Generator creates puzzles with a unique solution at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Candidates computes per-cell legal digit sets for hints.
type Candidates interface {
	Candidates(b *domain.Board) [9][9]domain.CandidateSet
}

// Validator performs boundary checks and row/col/block conflict scans.
type Validator interface {
	CheckGrid(b *domain.Board) error
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// GameStore keeps active puzzles in memory so the check operation can
// compare against the recorded solution. Nothing survives a restart.
type GameStore interface {
	Put(p *domain.Puzzle) string
	Get(id string) (*domain.Puzzle, bool)
	Delete(id string)
}
