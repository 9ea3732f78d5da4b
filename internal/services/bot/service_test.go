package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbleduel/internal/dependencies/mocks"
	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/dictionary"
	"github.com/mcoot/scrabbleduel/internal/services/game"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
	"github.com/mcoot/scrabbleduel/internal/services/scoring"
	"github.com/mcoot/scrabbleduel/internal/storage/memory"
	"github.com/mcoot/scrabbleduel/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage     *memory.Storage
	dictService *dictionary.Service
	idRandom    *mocks.MockRandom
	controller  *game.Controller
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.dictService = dictionary.New(s.storage)
	s.idRandom = mocks.NewMockRandom()

	gen := movegen.New(s.dictService, scoring.New())
	gameRnd := random.NewSeeded(1)
	clock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = game.NewController(s.storage, gen, clock, s.idRandom, gameRnd, testutil.NopLogger())

	strategies := map[string]Strategy{
		model.BotStrategyGreedy: NewGreedyStrategy(gen),
		model.BotStrategyRandom: NewRandomStrategy(gen, gameRnd),
	}
	s.service = NewService(s.controller, strategies, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) createGame(strategies map[model.Seat]string) *model.Game {
	s.idRandom.QueueString("GAME00000001")
	g, err := s.controller.CreateGame(s.ctx, strategies)
	s.Require().NoError(err)
	return g
}

func (s *ServiceSuite) TestPlayBotMove() {
	s.Require().NoError(s.dictService.LoadWords([]string{"at", "ta", "tat"}))
	g := s.createGame(map[model.Seat]string{
		model.Seat1: model.BotStrategyGreedy,
	})

	updated, move, err := s.service.PlayBotMove(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(model.Seat2, updated.State.CurrentSeat)
	s.Equal(model.TotalTileCount, updated.State.TileCount())
	if !move.IsPass() {
		s.Equal(move.Score, updated.State.Scores[model.Seat1])
	}

	// Persisted
	loaded, err := s.controller.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(updated.State, loaded.State)
}

func (s *ServiceSuite) TestPlayBotMoveSeatWithoutStrategy() {
	s.Require().NoError(s.dictService.LoadWords([]string{"at"}))
	g := s.createGame(map[model.Seat]string{
		model.Seat2: model.BotStrategyGreedy,
	})

	// Seat 1 is to move and has no strategy
	_, _, err := s.service.PlayBotMove(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrSeatNotBot)
}

func (s *ServiceSuite) TestPlayBotMoveUnregisteredStrategy() {
	s.Require().NoError(s.dictService.LoadWords([]string{"at"}))
	g := s.createGame(map[model.Seat]string{
		model.Seat1: model.BotStrategyMinimax,
	})

	// The game references a strategy this service does not carry
	_, _, err := s.service.PlayBotMove(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ServiceSuite) TestPlayBotMoveMissingGame() {
	_, _, err := s.service.PlayBotMove(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestPlayBotMoveCompleteGame() {
	s.Require().NoError(s.dictService.LoadWords([]string{"at"}))
	g := s.createGame(map[model.Seat]string{
		model.Seat1: model.BotStrategyGreedy,
	})
	g.State.PassesInARow = 2
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	_, _, err := s.service.PlayBotMove(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ServiceSuite) TestSelfPlayRunsToTermination() {
	// No dictionary loaded: every rack is unplayable, so both bots pass
	// and the game ends on the second pass
	g := s.createGame(map[model.Seat]string{
		model.Seat1: model.BotStrategyGreedy,
		model.Seat2: model.BotStrategyGreedy,
	})

	final, played, err := s.service.SelfPlay(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(2, played)
	s.True(final.State.IsTerminal())
	s.Equal(model.TotalTileCount, final.State.TileCount())
}

func (s *ServiceSuite) TestSelfPlayStopsAtExternalSeat() {
	g := s.createGame(map[model.Seat]string{
		model.Seat2: model.BotStrategyGreedy,
	})

	final, played, err := s.service.SelfPlay(s.ctx, g.ID)
	s.Require().NoError(err)

	// Seat 1 opens and is not a bot, so nothing is played
	s.Equal(0, played)
	s.Equal(model.Seat1, final.State.CurrentSeat)
}

func (s *ServiceSuite) TestSelfPlayHonorsCancellation() {
	g := s.createGame(map[model.Seat]string{
		model.Seat1: model.BotStrategyGreedy,
		model.Seat2: model.BotStrategyGreedy,
	})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, played, err := s.service.SelfPlay(ctx, g.ID)
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, played)
}
