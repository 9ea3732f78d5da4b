package bot

import (
	"context"

	"github.com/mcoot/scrabbleduel/internal/model"
)

// Strategy chooses a move for the seat to act in the given state
type Strategy interface {
	ChooseMove(ctx context.Context, state *model.GameState) (model.Move, error)
}

// Evaluator estimates how favorable a state is for the given seat. It is
// injected into sampling strategies and may be backed by anything, including
// a remote model; implementations are expected to honor the context.
type Evaluator interface {
	Evaluate(ctx context.Context, state *model.GameState, perspective model.Seat) (float64, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc func(ctx context.Context, state *model.GameState, perspective model.Seat) (float64, error)

// Evaluate calls the underlying function
func (f EvaluatorFunc) Evaluate(ctx context.Context, state *model.GameState, perspective model.Seat) (float64, error) {
	return f(ctx, state, perspective)
}

// ScoreDifferenceEvaluator values a state by its zero-sum score differential
type ScoreDifferenceEvaluator struct{}

// Evaluate returns the score differential from the perspective seat
func (ScoreDifferenceEvaluator) Evaluate(_ context.Context, state *model.GameState, perspective model.Seat) (float64, error) {
	return float64(state.Utility(perspective)), nil
}

var _ Evaluator = ScoreDifferenceEvaluator{}
