package model

import (
	"fmt"
	"strings"
)

// TilePlacement is a single newly placed tile
type TilePlacement struct {
	Position Position `json:"position"`
	Letter   rune     `json:"letter"`
}

// Move is either a tile placement or a pass
type Move struct {
	Placements []TilePlacement `json:"placements,omitempty"`
	Score      int             `json:"score"`
	Pass       bool            `json:"pass,omitempty"`
}

// PassMove returns the always-legal pass move
func PassMove() Move {
	return Move{Pass: true}
}

// IsPass returns true for a pass move
func (m Move) IsPass() bool {
	return m.Pass
}

// Word returns the letters of the placed tiles in placement order.
// It does not include pre-existing tiles the placement connects to.
func (m Move) Word() string {
	letters := make([]rune, len(m.Placements))
	for i, p := range m.Placements {
		letters[i] = p.Letter
	}
	return string(letters)
}

// Key returns a canonical signature for the move, used to treat the
// generated move list as a set
func (m Move) Key() string {
	if m.Pass {
		return "pass"
	}
	var sb strings.Builder
	for _, p := range m.Placements {
		fmt.Fprintf(&sb, "%d,%d=%c;", p.Position.Row, p.Position.Col, p.Letter)
	}
	return sb.String()
}

// Letters returns the tiles consumed from the rack by this move
func (m Move) Letters() []rune {
	letters := make([]rune, len(m.Placements))
	for i, p := range m.Placements {
		letters[i] = p.Letter
	}
	return letters
}

func (m Move) String() string {
	if m.Pass {
		return "Pass"
	}
	return fmt.Sprintf("Place(%q, %d pts, %d tiles)", m.Word(), m.Score, len(m.Placements))
}
