package response

import (
	"strconv"
	"time"

	"github.com/mcoot/scrabbleduel/internal/model"
)

// Placement is one tile placement in API responses
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// Move represents a move in API responses
type Move struct {
	Placements []Placement `json:"placements,omitempty"`
	Word       string      `json:"word,omitempty"`
	Score      int         `json:"score"`
	Pass       bool        `json:"pass,omitempty"`
}

// MoveFromModel converts a model.Move to a response Move
func MoveFromModel(m model.Move) Move {
	out := Move{Score: m.Score, Pass: m.Pass}
	if m.Pass {
		return out
	}
	out.Word = m.Word()
	out.Placements = make([]Placement, len(m.Placements))
	for i, p := range m.Placements {
		out.Placements[i] = Placement{
			Row:    p.Position.Row,
			Col:    p.Position.Col,
			Letter: string(p.Letter),
		}
	}
	return out
}

// Game represents a game in API responses. Board rows use '.' for empty
// cells.
type Game struct {
	ID          string            `json:"id"`
	Board       []string          `json:"board"`
	Scores      map[string]int    `json:"scores"`
	Racks       map[string]string `json:"racks"`
	CurrentSeat int               `json:"current_seat"`
	PoolCount   int               `json:"pool_count"`
	Passes      int               `json:"passes_in_a_row"`
	Terminal    bool              `json:"terminal"`
	Winner      *int              `json:"winner,omitempty"`
	Strategies  map[string]string `json:"strategies,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	state := g.State

	board := make([]string, state.Board.Size)
	for r := 0; r < state.Board.Size; r++ {
		row := make([]rune, state.Board.Size)
		for c := 0; c < state.Board.Size; c++ {
			cell := state.Board.Cells[r][c]
			if cell == 0 {
				cell = '.'
			}
			row[c] = cell
		}
		board[r] = string(row)
	}

	scores := make(map[string]int, len(state.Scores))
	racks := make(map[string]string, len(state.Racks))
	for _, seat := range []model.Seat{model.Seat1, model.Seat2} {
		key := strconv.Itoa(int(seat))
		scores[key] = state.Scores[seat]
		racks[key] = string(state.Racks[seat])
	}

	out := Game{
		ID:          string(g.ID),
		Board:       board,
		Scores:      scores,
		Racks:       racks,
		CurrentSeat: int(state.CurrentSeat),
		PoolCount:   len(state.Pool),
		Passes:      state.PassesInARow,
		Terminal:    state.IsTerminal(),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if len(g.Strategies) > 0 {
		out.Strategies = make(map[string]string, len(g.Strategies))
		for seat, name := range g.Strategies {
			out.Strategies[strconv.Itoa(int(seat))] = name
		}
	}

	if winner, decided := state.Winner(); decided {
		w := int(winner)
		out.Winner = &w
	}

	return out
}

// MoveResult is the response for a submitted or bot-played move
type MoveResult struct {
	Move Move `json:"move"`
	Game Game `json:"game"`
}

// MoveList is the response for legal move enumeration
type MoveList struct {
	Moves []Move `json:"moves"`
}

// MoveListFromModel converts a slice of model moves
func MoveListFromModel(moves []model.Move) MoveList {
	out := MoveList{Moves: make([]Move, len(moves))}
	for i, m := range moves {
		out.Moves[i] = MoveFromModel(m)
	}
	return out
}

// GameList is the response for listing games
type GameList struct {
	GameIDs []string `json:"game_ids"`
}

// SelfPlayResult is the response for a self-play run
type SelfPlayResult struct {
	MovesPlayed int  `json:"moves_played"`
	Game        Game `json:"game"`
}
