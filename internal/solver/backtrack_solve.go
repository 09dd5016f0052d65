package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudokuweb/internal/domain"
	"svw.info/sudokuweb/internal/ports"
)

// ErrUnsolvable reports that the board as given has no completion.
var ErrUnsolvable = errors.New("board is unsolvable or search was canceled")

// Solve finds the first solution, trying digits in ascending order. The
// input board is not modified; the solved copy is returned.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := *b
	nodes := 0
	if !search(ctx, &grid, searchMode{kind: findFirst}, nil, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Fill is Solve with a random digit order per cell, used to produce
// varied fully solved boards from sparse or empty inputs.
func (s *BacktrackingSolver) Fill(ctx context.Context, rng *rand.Rand, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := *b
	nodes := 0
	if !search(ctx, &grid, searchMode{kind: randomized, rng: rng}, nil, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
