package bot

import (
	"context"

	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
)

// GreedyStrategy plays the highest-scoring immediate move, ignoring what it
// leaves the opponent. A useful baseline and surprisingly hard to beat at
// shallow search depths.
type GreedyStrategy struct {
	movegen *movegen.Service
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(gen *movegen.Service) *GreedyStrategy {
	return &GreedyStrategy{movegen: gen}
}

var _ Strategy = (*GreedyStrategy)(nil)

// ChooseMove returns the legal move with the greatest immediate score,
// ties broken by generation order
func (s *GreedyStrategy) ChooseMove(ctx context.Context, state *model.GameState) (model.Move, error) {
	moves := s.movegen.GenerateMoves(state, state.CurrentSeat)
	if len(moves) == 0 {
		return model.PassMove(), nil
	}

	best := moves[0]
	for _, move := range moves[1:] {
		if move.Score > best.Score {
			best = move
		}
	}
	return best, nil
}
