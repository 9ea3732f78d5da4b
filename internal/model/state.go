package model

import "github.com/mcoot/scrabbleduel/internal/dependencies/random"

// Seat identifies one of the two players of a game
type Seat int

const (
	Seat1 Seat = 1
	Seat2 Seat = 2
)

// Opponent returns the other seat
func (s Seat) Opponent() Seat {
	return 3 - s
}

// Valid returns true for the two playable seats
func (s Seat) Valid() bool {
	return s == Seat1 || s == Seat2
}

// GameState is the complete state of a game in progress. States are
// immutable once built: ApplyMove returns a fresh state and never mutates
// the receiver, which makes game trees safe to explore without undo logic.
type GameState struct {
	Board        *Board        `json:"board"`
	Pool         TilePool      `json:"pool"`
	Racks        map[Seat]Rack `json:"racks"`
	CurrentSeat  Seat          `json:"current_seat"`
	Scores       map[Seat]int  `json:"scores"`
	PassesInARow int           `json:"passes_in_a_row"`
}

// NewGameState creates a fresh standard game: shuffled 100-tile pool, seven
// tiles dealt to each seat, zeroed scores, seat 1 to move. Deterministic
// given a seeded random source.
func NewGameState(rnd random.Random) *GameState {
	pool := NewTilePool()
	pool.Shuffle(rnd)

	racks := make(map[Seat]Rack, 2)
	for _, seat := range []Seat{Seat1, Seat2} {
		rack := make(Rack, 0, RackSize)
		for i := 0; i < RackSize && len(pool) > 0; i++ {
			rack = append(rack, pool[len(pool)-1])
			pool = pool[:len(pool)-1]
		}
		racks[seat] = rack
	}

	return &GameState{
		Board:       NewBoard(StandardBoardSize),
		Pool:        pool,
		Racks:       racks,
		CurrentSeat: Seat1,
		Scores:      map[Seat]int{Seat1: 0, Seat2: 0},
	}
}

// Clone returns a deep copy of the state
func (g *GameState) Clone() *GameState {
	racks := make(map[Seat]Rack, len(g.Racks))
	for seat, rack := range g.Racks {
		racks[seat] = rack.Clone()
	}
	scores := make(map[Seat]int, len(g.Scores))
	for seat, score := range g.Scores {
		scores[seat] = score
	}
	return &GameState{
		Board:        g.Board.Clone(),
		Pool:         g.Pool.Clone(),
		Racks:        racks,
		CurrentSeat:  g.CurrentSeat,
		Scores:       scores,
		PassesInARow: g.PassesInARow,
	}
}

// ApplyMove returns the state resulting from the current seat playing the
// given move. For a placement it writes the new letters, credits the move
// score, removes the consumed tiles from the acting rack, draws replacements
// from the pool (fewer if depleted) and resets the pass counter. For a pass
// it only increments the pass counter. Either way the turn advances.
//
// The move is assumed to come from the generator; externally submitted
// moves must be re-validated first (see the movegen service).
func (g *GameState) ApplyMove(move Move, rnd random.Random) *GameState {
	next := g.Clone()
	acting := g.CurrentSeat
	next.CurrentSeat = acting.Opponent()

	if move.IsPass() {
		next.PassesInARow = g.PassesInARow + 1
		return next
	}

	for _, p := range move.Placements {
		next.Board.Set(p.Position, p.Letter)
	}
	next.Scores[acting] += move.Score

	// Tolerate unheld tiles here only because generated moves are already
	// rack-checked; the service boundary rejects them outright.
	if rack, err := next.Racks[acting].Remove(move.Letters()); err == nil {
		next.Racks[acting] = rack
	}

	drawn := next.Pool.Draw(len(move.Placements), rnd)
	next.Racks[acting] = append(next.Racks[acting], drawn...)
	next.PassesInARow = 0

	return next
}

// IsTerminal returns true when the pool is empty or both seats passed in a row
func (g *GameState) IsTerminal() bool {
	return len(g.Pool) == 0 || g.PassesInARow >= 2
}

// Utility returns the zero-sum score differential from the perspective of
// the given seat
func (g *GameState) Utility(seat Seat) int {
	return g.Scores[seat] - g.Scores[seat.Opponent()]
}

// TileCount returns the total number of tiles across racks, pool and board.
// It is invariant over the lifetime of a game.
func (g *GameState) TileCount() int {
	total := len(g.Pool) + g.Board.TileCount()
	for _, rack := range g.Racks {
		total += len(rack)
	}
	return total
}

// Winner returns the leading seat at a terminal state. The second return is
// false while the game is live or when the game is tied.
func (g *GameState) Winner() (Seat, bool) {
	if !g.IsTerminal() {
		return 0, false
	}
	switch {
	case g.Scores[Seat1] > g.Scores[Seat2]:
		return Seat1, true
	case g.Scores[Seat2] > g.Scores[Seat1]:
		return Seat2, true
	default:
		return 0, false
	}
}
