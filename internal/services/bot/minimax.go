package bot

import (
	"context"
	"log/slog"
	"math"

	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
)

// DefaultMinimaxDepth is the default search depth limit
const DefaultMinimaxDepth = 2

// MinimaxStrategy picks moves by depth-limited minimax search with
// alpha-beta pruning. The utility at a cutoff or terminal node is the score
// differential for the seat that invoked the search; whether a node is a
// max or a min node follows the state's current seat, not tree depth, since
// passes do not change whose turn it is in any special way.
//
// Tile draws inside explored branches consume the strategy's random source,
// so a strategy instance is not safe for concurrent use.
type MinimaxStrategy struct {
	movegen  *movegen.Service
	random   random.Random
	maxDepth int
	logger   *slog.Logger

	nodesExplored int
}

// NewMinimaxStrategy creates a minimax strategy with the given depth limit
func NewMinimaxStrategy(gen *movegen.Service, rnd random.Random, maxDepth int, logger *slog.Logger) *MinimaxStrategy {
	if maxDepth <= 0 {
		maxDepth = DefaultMinimaxDepth
	}
	return &MinimaxStrategy{
		movegen:  gen,
		random:   rnd,
		maxDepth: maxDepth,
		logger:   logger.With(slog.String("component", "minimax-strategy")),
	}
}

var _ Strategy = (*MinimaxStrategy)(nil)

// ChooseMove searches the game tree from the given state and returns the
// best move for the state's current seat. Ties keep the first move found.
// If no moves exist the strategy passes.
func (s *MinimaxStrategy) ChooseMove(ctx context.Context, state *model.GameState) (model.Move, error) {
	maximizer := state.CurrentSeat
	s.nodesExplored = 0

	moves := s.movegen.GenerateMoves(state, maximizer)
	if len(moves) == 0 {
		return model.PassMove(), nil
	}

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	bestValue := math.Inf(-1)
	bestMove := moves[0]

	for _, move := range moves {
		next := state.ApplyMove(move, s.random)
		value := s.minimaxValue(next, s.maxDepth-1, alpha, beta, maximizer)
		if value > bestValue {
			bestValue = value
			bestMove = move
		}
		alpha = math.Max(alpha, bestValue)
	}

	s.logger.Debug("minimax search complete",
		slog.Int("nodes_explored", s.nodesExplored),
		slog.Int("moves_considered", len(moves)),
		slog.Float64("best_value", bestValue),
	)

	return bestMove, nil
}

// NodesExplored reports the node count of the most recent search
func (s *MinimaxStrategy) NodesExplored() int {
	return s.nodesExplored
}

func (s *MinimaxStrategy) minimaxValue(state *model.GameState, depth int, alpha, beta float64, maximizer model.Seat) float64 {
	s.nodesExplored++

	if depth == 0 || state.IsTerminal() {
		return float64(state.Utility(maximizer))
	}

	mover := state.CurrentSeat
	moves := s.movegen.GenerateMoves(state, mover)

	if mover == maximizer {
		value := math.Inf(-1)
		for _, move := range moves {
			next := state.ApplyMove(move, s.random)
			value = math.Max(value, s.minimaxValue(next, depth-1, alpha, beta, maximizer))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break // Beta cutoff
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range moves {
		next := state.ApplyMove(move, s.random)
		value = math.Min(value, s.minimaxValue(next, depth-1, alpha, beta, maximizer))
		beta = math.Min(beta, value)
		if alpha >= beta {
			break // Alpha cutoff
		}
	}
	return value
}
