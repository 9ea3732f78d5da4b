package bot

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
)

// DefaultPlayoutBudget is the default total number of heuristic evaluations
// spread across candidate moves
const DefaultPlayoutBudget = 100

// MonteCarloStrategy samples move outcomes through an injected heuristic
// evaluator. Each candidate move is applied once and the evaluator is
// invoked repeatedly on that single successor, averaging the results.
//
// This is a one-ply approximation, not a full rollout to a terminal state:
// the successor of a move is fixed, so repeated evaluation only adds
// information when the heuristic itself is stochastic.
type MonteCarloStrategy struct {
	movegen   *movegen.Service
	evaluator Evaluator
	random    random.Random
	playouts  int
	logger    *slog.Logger
}

// NewMonteCarloStrategy creates a Monte Carlo strategy with the given total
// playout budget and heuristic evaluator
func NewMonteCarloStrategy(gen *movegen.Service, evaluator Evaluator, rnd random.Random, playouts int, logger *slog.Logger) *MonteCarloStrategy {
	if playouts <= 0 {
		playouts = DefaultPlayoutBudget
	}
	return &MonteCarloStrategy{
		movegen:   gen,
		evaluator: evaluator,
		random:    rnd,
		playouts:  playouts,
		logger:    logger.With(slog.String("component", "montecarlo-strategy")),
	}
}

var _ Strategy = (*MonteCarloStrategy)(nil)

// ChooseMove distributes the playout budget evenly over the legal moves (at
// least one evaluation per move) and returns the move with the highest
// average heuristic value, ties broken by generation order. An evaluator
// error aborts the whole selection; substituting a default value would bias
// move selection undetectably.
func (s *MonteCarloStrategy) ChooseMove(ctx context.Context, state *model.GameState) (model.Move, error) {
	seat := state.CurrentSeat

	moves := s.movegen.GenerateMoves(state, seat)
	if len(moves) == 0 {
		return model.PassMove(), nil
	}

	perMove := s.playouts / len(moves)
	if perMove < 1 {
		perMove = 1
	}

	// Successors are built serially so the tile-draw source stays confined
	// to this goroutine; sampling then fans out since each successor is an
	// independent value
	successors := make([]*model.GameState, len(moves))
	for i, move := range moves {
		successors[i] = state.ApplyMove(move, s.random)
	}

	averages := make([]float64, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	for i := range moves {
		i := i
		g.Go(func() error {
			total := 0.0
			for j := 0; j < perMove; j++ {
				value, err := s.evaluator.Evaluate(gctx, successors[i], seat)
				if err != nil {
					return err
				}
				total += value
			}
			averages[i] = total / float64(perMove)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Move{}, err
	}

	best := 0
	for i := range averages {
		if averages[i] > averages[best] {
			best = i
		}
	}

	s.logger.Debug("monte carlo sampling complete",
		slog.Int("moves_considered", len(moves)),
		slog.Int("playouts_per_move", perMove),
		slog.Float64("best_average", averages[best]),
	)

	return moves[best], nil
}
