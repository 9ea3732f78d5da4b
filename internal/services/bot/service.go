package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/game"
)

// MaxSelfPlayMoves caps the number of moves a self-play run will apply, so a
// pathological game cannot loop forever
const MaxSelfPlayMoves = 1000

// Service plays bot moves in games where seats have strategies assigned
type Service struct {
	games      *game.Controller
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service with the given strategy registry,
// keyed by strategy name
func NewService(games *game.Controller, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		games:      games,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// PlayBotMove chooses and applies one move for the game's current seat. The
// seat must have a strategy assigned, and the strategy name must be
// registered.
func (s *Service) PlayBotMove(ctx context.Context, gameID model.GameID) (*model.Game, model.Move, error) {
	g, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.Move{}, err
	}
	return s.playMove(ctx, g)
}

// SelfPlay advances the game by playing bot moves until the game ends, a
// seat without a strategy comes up to move, or the move cap is hit. It
// returns the final game state and the number of moves played.
func (s *Service) SelfPlay(ctx context.Context, gameID model.GameID) (*model.Game, int, error) {
	g, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		return nil, 0, err
	}

	played := 0
	for played < MaxSelfPlayMoves {
		if err := ctx.Err(); err != nil {
			return g, played, err
		}
		if g.State.IsTerminal() {
			break
		}
		if g.StrategyFor(g.State.CurrentSeat) == "" {
			break
		}

		g, _, err = s.playMove(ctx, g)
		if err != nil {
			return nil, played, err
		}
		played++
	}

	s.logger.Info("self-play finished",
		slog.String("game_id", string(g.ID)),
		slog.Int("moves_played", played),
		slog.Bool("terminal", g.State.IsTerminal()),
	)

	return g, played, nil
}

func (s *Service) playMove(ctx context.Context, g *model.Game) (*model.Game, model.Move, error) {
	if g.State.IsTerminal() {
		return nil, model.Move{}, model.ErrGameComplete
	}

	seat := g.State.CurrentSeat
	name := g.StrategyFor(seat)
	if name == "" {
		return nil, model.Move{}, model.ErrSeatNotBot
	}
	strategy, ok := s.strategies[name]
	if !ok {
		return nil, model.Move{}, model.ErrUnknownStrategy
	}

	move, err := strategy.ChooseMove(ctx, g.State)
	if err != nil {
		return nil, model.Move{}, err
	}

	s.logger.Debug("bot move chosen",
		slog.String("game_id", string(g.ID)),
		slog.Int("seat", int(seat)),
		slog.String("strategy", name),
		slog.String("move", move.String()),
	)

	updated, err := s.games.ApplyGeneratedMove(ctx, g.ID, move)
	if err != nil {
		return nil, model.Move{}, err
	}
	return updated, move, nil
}
