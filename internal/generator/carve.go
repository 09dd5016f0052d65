package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokuweb/internal/domain"
	"svw.info/sudokuweb/internal/ports"
)

// Generate builds a puzzle for the requested difficulty: a randomized
// full solution, then uniqueness-preserving removals until the
// difficulty's removal target is met. Each removal is probed on a
// scratch copy with a limit-2 solution search; a removal that admits a
// second solution is reverted. The same seed yields the same puzzle.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var empty domain.Board
	full, st, err := g.Solver.Fill(ctx, rng, &empty)
	if err != nil {
		return nil, st, fmt.Errorf("fill solved board: %w", err)
	}
	nodes := st.Nodes

	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	carved := *full
	target := diff.Removals()
	deadline := start.Add(g.Budget)
	removed := 0

	for _, pos := range positions {
		if removed >= target {
			break
		}
		// Only the hard tier is slow enough to need the budget.
		if diff == domain.Hard && time.Now().After(deadline) {
			g.Log.WithFields(logrus.Fields{
				"difficulty": diff.String(),
				"budget":     g.Budget,
				"removed":    removed,
				"target":     target,
			}).Warn("generation budget exceeded, puzzle may be easier than requested")
			break
		}
		r, c := pos/9, pos%9
		old := carved.Values[r][c]
		carved.Values[r][c] = 0

		scratch := carved
		unique, pst, perr := g.Solver.Unique(ctx, &scratch)
		nodes += pst.Nodes
		if perr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, perr
		}
		if unique {
			removed++
		} else {
			carved.Values[r][c] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Original:   carved,
		Solution:   *full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
