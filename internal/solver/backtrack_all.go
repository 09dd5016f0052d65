package solver

import (
	"context"
	"time"

	"svw.info/sudokuweb/internal/domain"
	"svw.info/sudokuweb/internal/ports"
)

// SolveAll collects distinct solutions by value, stopping once limit is
// reached. Exhausting the space with fewer solutions is not an error;
// callers read the returned slice length.
func (s *BacktrackingSolver) SolveAll(ctx context.Context, b *domain.Board, limit int) ([]domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := *b
	nodes := 0
	sols := make([]domain.Board, 0, limit)
	search(ctx, &grid, searchMode{kind: findAll, limit: limit}, &sols, &nodes)
	return sols, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	sols, st, err := s.SolveAll(ctx, b, 2)
	return len(sols) == 1, st, err
}
