package solver

import (
	"context"
	"math/rand"

	"svw.info/sudokuweb/internal/domain"
)

// BacktrackingSolver is a straightforward recursive solver. All four
// entry points run the same depth-first search under a different mode.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// modeKind tags the search variant so each contract is handled
// explicitly instead of through interacting boolean flags.
type modeKind int

const (
	findFirst modeKind = iota
	findAll
	randomized
)

type searchMode struct {
	kind  modeKind
	limit int        // findAll only
	rng   *rand.Rand // randomized only
}

// search recursively fills grid, undoing each placement before trying
// the next digit or returning failure. In findAll mode it appends full
// boards to *sols and unwinds with success once the limit is reached.
// A false return means the subtree is exhausted, which is ordinary
// control flow during uniqueness probing, not an error.
func search(ctx context.Context, grid *domain.Board, m searchMode, sols *[]domain.Board, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := grid.FirstEmpty()
	if !ok {
		if m.kind == findAll {
			*sols = append(*sols, *grid)
		}
		return true
	}
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if m.kind == randomized {
		// fresh permutation per cell
		m.rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	}
	for _, v := range digits {
		*nodes++
		if !grid.Legal(r, c, v) {
			continue
		}
		grid.Values[r][c] = v
		if search(ctx, grid, m, sols, nodes) && m.kind != findAll {
			return true
		}
		if m.kind == findAll && len(*sols) >= m.limit {
			grid.Values[r][c] = 0
			return true
		}
		grid.Values[r][c] = 0
	}
	return false
}
