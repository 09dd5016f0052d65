// Package candidates computes, for every empty cell of a board, the set
// of digits not excluded by row, column, or block occupancy. It backs
// the hint feature only; uniqueness is always the solver's job.
package candidates

import "svw.info/sudokuweb/internal/domain"

type Calculator struct{}

func New() *Calculator { return &Calculator{} }

// Candidates is a pure single pass over the board: no recursion, no
// backtracking. Filled cells get the empty set. Calling it twice on the
// same snapshot yields identical results.
func (c *Calculator) Candidates(b *domain.Board) [9][9]domain.CandidateSet {
	var marks [9][9]domain.CandidateSet
	for r := 0; r < 9; r++ {
		for col := 0; col < 9; col++ {
			if b.Values[r][col] != 0 {
				continue
			}
			set := domain.FullCandidates()
			for i := 0; i < 9; i++ {
				set.Remove(b.Values[r][i])
				set.Remove(b.Values[i][col])
			}
			br, bc := (r/3)*3, (col/3)*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					set.Remove(b.Values[br+dr][bc+dc])
				}
			}
			marks[r][col] = set
		}
	}
	return marks
}

// Apply subtracts per-cell manually removed digits from marks. Digits a
// cell's set never contained subtract to a no-op, so callers can replay
// removal lists blindly.
func Apply(marks [9][9]domain.CandidateSet, removals [9][9][]uint8) [9][9]domain.CandidateSet {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for _, v := range removals[r][c] {
				marks[r][c].Remove(v)
			}
		}
	}
	return marks
}
