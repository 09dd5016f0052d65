package domain

// Board holds a 9x9 grid of digits. 0 means the cell is empty, 1-9 are
// placed digits. Value semantics: copying a Board snapshots it, which the
// solver and generator rely on for scratch copies.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// Legal reports whether v can be placed at (r, c): v must not already
// appear in row r, column c, or the 3x3 block containing the cell. Only
// digits 1-9 are meaningful; 0 is never checked.
func (b *Board) Legal(r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// FirstEmpty returns the first empty cell in row-major order. The scan
// order defines the search order, and therefore solver determinism for a
// fixed digit order.
func (b *Board) FirstEmpty() (row, col int, ok bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// CountFilled returns the number of non-empty cells.
func (b *Board) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports cell-by-cell equality over all 81 positions.
func (b *Board) Equal(other *Board) bool {
	return b.Values == other.Values
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle pairs a carved board with its unique solution. Original agrees
// with Solution on every given; uniqueness is enforced at generation time
// and not re-verified afterwards.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Original   Board      `json:"original"`
	Solution   Board      `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}
