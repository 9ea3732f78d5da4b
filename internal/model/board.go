package model

// StandardBoardSize is the side length of a standard board
const StandardBoardSize = 15

// Center returns the center position for a board of the given size
func Center(size int) Position {
	return Position{Row: size / 2, Col: size / 2}
}

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Premium is the score multiplier kind carried by a board cell
type Premium int

const (
	PremiumNone Premium = iota
	PremiumDoubleLetter
	PremiumTripleLetter
	PremiumDoubleWord
	PremiumTripleWord
)

// standardPremiums is the fixed premium layout for the standard 15x15 board.
// 0=none, 2=double letter, 3=triple letter, 4=double word, 5=triple word
var standardPremiums = [StandardBoardSize][StandardBoardSize]int{
	{0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0},
	{2, 0, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 0, 2},
	{0, 0, 4, 0, 0, 0, 2, 0, 2, 0, 0, 0, 4, 0, 0},
	{0, 0, 0, 5, 0, 0, 0, 2, 0, 0, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 3, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 2, 0, 0, 0, 4, 0, 0, 0, 2, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 3, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 3, 0},
	{0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0},
	{0, 0, 0, 5, 0, 0, 0, 2, 0, 0, 0, 5, 0, 0, 0},
	{0, 0, 4, 0, 0, 0, 2, 0, 2, 0, 0, 0, 4, 0, 0},
	{2, 0, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 0, 2},
	{0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0},
}

// Board represents the shared letter grid of a game
type Board struct {
	Size  int      `json:"size"`  // Grid dimension (15 for a standard game)
	Cells [][]rune `json:"cells"` // Row-major: Cells[row][col], 0 means empty
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Size)
	for i := range b.Cells {
		copy(clone.Cells[i], b.Cells[i])
	}
	return clone
}

// Get returns the letter at the given position, or 0 if empty
func (b *Board) Get(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (b *Board) Set(pos Position, letter rune) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = letter
	}
}

// Clear empties the cell at the given position
func (b *Board) Clear(pos Position) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = 0
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == 0
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// IsBlank returns true if no tile has been placed on the board yet
func (b *Board) IsBlank() bool {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != 0 {
				return false
			}
		}
	}
	return true
}

// TileCount returns the number of placed tiles
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// PremiumAt returns the premium kind at the given position.
// Premium squares are defined only for the standard 15x15 layout;
// boards of other sizes carry no premiums.
func (b *Board) PremiumAt(pos Position) Premium {
	if b.Size != StandardBoardSize || !b.IsValidPosition(pos) {
		return PremiumNone
	}
	switch standardPremiums[pos.Row][pos.Col] {
	case 2:
		return PremiumDoubleLetter
	case 3:
		return PremiumTripleLetter
	case 4:
		return PremiumDoubleWord
	case 5:
		return PremiumTripleWord
	default:
		return PremiumNone
	}
}

// HasFilledNeighbor returns true if any orthogonally adjacent cell is filled
func (b *Board) HasFilledNeighbor(pos Position) bool {
	neighbors := []Position{
		{Row: pos.Row - 1, Col: pos.Col},
		{Row: pos.Row + 1, Col: pos.Col},
		{Row: pos.Row, Col: pos.Col - 1},
		{Row: pos.Row, Col: pos.Col + 1},
	}
	for _, n := range neighbors {
		if b.IsValidPosition(n) && !b.IsEmpty(n) {
			return true
		}
	}
	return false
}

// Anchors returns all empty cells orthogonally adjacent to at least one
// filled cell. A blank board has no anchors.
func (b *Board) Anchors() []Position {
	var anchors []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			pos := Position{Row: row, Col: col}
			if b.IsEmpty(pos) && b.HasFilledNeighbor(pos) {
				anchors = append(anchors, pos)
			}
		}
	}
	return anchors
}

// RunThrough returns the maximal contiguous run of filled cells through the
// given position in the given orientation. The returned position is the first
// cell of the run. If the given cell is empty, the run is empty.
func (b *Board) RunThrough(pos Position, horizontal bool) (Position, string) {
	if b.IsEmpty(pos) {
		return pos, ""
	}

	start := pos
	if horizontal {
		for start.Col > 0 && !b.IsEmpty(Position{Row: start.Row, Col: start.Col - 1}) {
			start.Col--
		}
	} else {
		for start.Row > 0 && !b.IsEmpty(Position{Row: start.Row - 1, Col: start.Col}) {
			start.Row--
		}
	}

	letters := make([]rune, 0, b.Size)
	cur := start
	for b.IsValidPosition(cur) && !b.IsEmpty(cur) {
		letters = append(letters, b.Get(cur))
		if horizontal {
			cur.Col++
		} else {
			cur.Row++
		}
	}
	return start, string(letters)
}
