package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is a stored game: the engine state plus service metadata
type Game struct {
	ID GameID `json:"id"`

	State *GameState `json:"state"`

	// Strategies assigns a bot strategy name to each seat. A seat with no
	// entry is played externally via move submission.
	Strategies map[Seat]string `json:"strategies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StrategyFor returns the bot strategy assigned to a seat, or "" for an
// externally played seat
func (g *Game) StrategyFor(seat Seat) string {
	if g.Strategies == nil {
		return ""
	}
	return g.Strategies[seat]
}

// Bot strategy names
const (
	BotStrategyMinimax    = "minimax"
	BotStrategyMonteCarlo = "montecarlo"
	BotStrategyGreedy     = "greedy"
	BotStrategyRandom     = "random"
)

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyMinimax, BotStrategyMonteCarlo, BotStrategyGreedy, BotStrategyRandom}
}
