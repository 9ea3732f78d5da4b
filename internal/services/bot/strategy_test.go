package bot

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbleduel/internal/dependencies/mocks"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/dictionary"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
	"github.com/mcoot/scrabbleduel/internal/services/scoring"
	"github.com/mcoot/scrabbleduel/internal/storage/memory"
	"github.com/mcoot/scrabbleduel/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	dictService *dictionary.Service
	movegen     *movegen.Service
	ctx         context.Context
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.dictService = dictionary.New(memory.New())
	s.movegen = movegen.New(s.dictService, scoring.New())
	s.ctx = context.Background()
}

func (s *StrategySuite) loadDictionary(words ...string) {
	s.Require().NoError(s.dictService.LoadWords(words))
}

// smallState builds a 5x5 game with tiny racks and pool, small enough for
// exhaustive search in tests. Non-standard sizes carry no premiums, which
// keeps expected scores simple.
func (s *StrategySuite) smallState(rack1, rack2 model.Rack, pool model.TilePool) *model.GameState {
	return &model.GameState{
		Board:       model.NewBoard(5),
		Pool:        pool,
		Racks:       map[model.Seat]model.Rack{model.Seat1: rack1, model.Seat2: rack2},
		CurrentSeat: model.Seat1,
		Scores:      map[model.Seat]int{model.Seat1: 0, model.Seat2: 0},
	}
}

// bruteForceMinimax is plain unpruned minimax over the same move generator,
// used as the ground truth the pruning search must agree with
func (s *StrategySuite) bruteForceMinimax(state *model.GameState, depth int, maximizer model.Seat, rnd *mocks.MockRandom) float64 {
	if depth == 0 || state.IsTerminal() {
		return float64(state.Utility(maximizer))
	}

	moves := s.movegen.GenerateMoves(state, state.CurrentSeat)
	maximizing := state.CurrentSeat == maximizer

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, move := range moves {
		value := s.bruteForceMinimax(state.ApplyMove(move, rnd), depth-1, maximizer, rnd)
		if maximizing {
			best = math.Max(best, value)
		} else {
			best = math.Min(best, value)
		}
	}
	return best
}

func (s *StrategySuite) TestMinimaxAgreesWithBruteForce() {
	s.loadDictionary("at", "ta", "tat")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{'T', 'A'}, model.TilePool{'A', 'T'})

	const depth = 3
	// MockRandom draws index 0 every time, so tile draws match between the
	// pruning search and the brute-force replay
	strategy := NewMinimaxStrategy(s.movegen, mocks.NewMockRandom(), depth, testutil.NopLogger())

	chosen, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	// Replay the root expansion without pruning: same ordering, strict
	// improvement, first tie kept
	rnd := mocks.NewMockRandom()
	moves := s.movegen.GenerateMoves(state, model.Seat1)
	s.Require().NotEmpty(moves)

	bestValue := math.Inf(-1)
	bestMove := moves[0]
	for _, move := range moves {
		value := s.bruteForceMinimax(state.ApplyMove(move, rnd), depth-1, model.Seat1, rnd)
		if value > bestValue {
			bestValue = value
			bestMove = move
		}
	}

	s.Equal(bestMove, chosen)
	s.Positive(strategy.NodesExplored())
}

func (s *StrategySuite) TestMinimaxPassesWhenNoMoves() {
	s.loadDictionary("at")
	state := s.smallState(model.Rack{'A'}, model.Rack{'T'}, model.TilePool{})
	// Empty pool makes the state terminal, so no moves are generated
	strategy := NewMinimaxStrategy(s.movegen, mocks.NewMockRandom(), 2, testutil.NopLogger())

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)
	s.True(move.IsPass())
}

func (s *StrategySuite) TestMinimaxDepthOnePicksHighestScore() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	strategy := NewMinimaxStrategy(s.movegen, mocks.NewMockRandom(), 1, testutil.NopLogger())

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	// At depth 1 the value of a move is its immediate score differential
	best := 0
	for _, m := range s.movegen.GenerateMoves(state, model.Seat1) {
		if m.Score > best {
			best = m.Score
		}
	}
	s.Equal(best, move.Score)
}

func (s *StrategySuite) TestGreedyPicksHighestImmediateScore() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	strategy := NewGreedyStrategy(s.movegen)

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	moves := s.movegen.GenerateMoves(state, model.Seat1)
	for _, m := range moves {
		s.GreaterOrEqual(move.Score, m.Score)
	}
	s.False(move.IsPass())
}

func (s *StrategySuite) TestGreedyTieKeepsFirst() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	strategy := NewGreedyStrategy(s.movegen)

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	moves := s.movegen.GenerateMoves(state, model.Seat1)
	for _, m := range moves {
		if m.Score == move.Score {
			s.Equal(m, move)
			break
		}
	}
}

func (s *StrategySuite) TestRandomPicksFromLegalMoves() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(2)
	strategy := NewRandomStrategy(s.movegen, rnd)

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	moves := s.movegen.GenerateMoves(state, model.Seat1)
	s.Require().Greater(len(moves), 2)
	s.Equal(moves[2], move)
}

func (s *StrategySuite) TestMonteCarloPrefersHighestAverage() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	strategy := NewMonteCarloStrategy(s.movegen, ScoreDifferenceEvaluator{}, mocks.NewMockRandom(), 50, testutil.NopLogger())

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)

	// The score-difference heuristic is deterministic, so the sampled
	// average of each move is its immediate differential and the pick
	// must match the greedy one
	greedy, err := NewGreedyStrategy(s.movegen).ChooseMove(s.ctx, state)
	s.Require().NoError(err)
	s.Equal(greedy, move)
}

func (s *StrategySuite) TestMonteCarloSpreadsBudgetWithAtLeastOneEvaluation() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	moves := s.movegen.GenerateMoves(state, model.Seat1)
	s.Require().NotEmpty(moves)

	var calls atomic.Int64
	evaluator := EvaluatorFunc(func(_ context.Context, st *model.GameState, seat model.Seat) (float64, error) {
		calls.Add(1)
		return float64(st.Utility(seat)), nil
	})

	// Budget smaller than the move count still evaluates every move once
	strategy := NewMonteCarloStrategy(s.movegen, evaluator, mocks.NewMockRandom(), 1, testutil.NopLogger())
	_, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)
	s.Equal(int64(len(moves)), calls.Load())

	// A larger budget is split evenly
	calls.Store(0)
	budget := 4 * len(moves)
	strategy = NewMonteCarloStrategy(s.movegen, evaluator, mocks.NewMockRandom(), budget, testutil.NopLogger())
	_, err = strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)
	s.Equal(int64(budget), calls.Load())
}

func (s *StrategySuite) TestMonteCarloPropagatesEvaluatorErrors() {
	s.loadDictionary("at", "ta")
	state := s.smallState(model.Rack{'A', 'T'}, model.Rack{}, model.TilePool{'E'})

	heuristicErr := errors.New("heuristic unavailable")
	evaluator := EvaluatorFunc(func(context.Context, *model.GameState, model.Seat) (float64, error) {
		return 0, heuristicErr
	})

	strategy := NewMonteCarloStrategy(s.movegen, evaluator, mocks.NewMockRandom(), 10, testutil.NopLogger())

	_, err := strategy.ChooseMove(s.ctx, state)
	s.ErrorIs(err, heuristicErr)
}

func (s *StrategySuite) TestMonteCarloPassesAtTerminalState() {
	s.loadDictionary("at")
	state := s.smallState(model.Rack{'A'}, model.Rack{'T'}, model.TilePool{})

	strategy := NewMonteCarloStrategy(s.movegen, ScoreDifferenceEvaluator{}, mocks.NewMockRandom(), 10, testutil.NopLogger())

	move, err := strategy.ChooseMove(s.ctx, state)
	s.Require().NoError(err)
	s.True(move.IsPass())
}
