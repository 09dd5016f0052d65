package domain

import "strings"

// Difficulty selects how many cells the generator tries to clear.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Removals returns the target number of cells to clear out of 81. The
// table counts removals, not remaining clues; higher means fewer givens
// and a harder puzzle.
func (d Difficulty) Removals() int {
	switch d {
	case Easy:
		return 43
	case Hard:
		return 62
	default:
		return 51 // Medium
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a difficulty label to its level. Unrecognized
// labels resolve to Medium rather than an error.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
