package bot

import (
	"context"

	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
)

// RandomStrategy plays a uniformly random legal move
type RandomStrategy struct {
	movegen *movegen.Service
	random  random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(gen *movegen.Service, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{movegen: gen, random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseMove picks a random move from the legal set (including Pass)
func (s *RandomStrategy) ChooseMove(ctx context.Context, state *model.GameState) (model.Move, error) {
	moves := s.movegen.GenerateMoves(state, state.CurrentSeat)
	if len(moves) == 0 {
		return model.PassMove(), nil
	}
	return moves[s.random.Intn(len(moves))], nil
}
