package game

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mcoot/scrabbleduel/internal/dependencies/clock"
	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
	"github.com/mcoot/scrabbleduel/internal/storage"
)

// GameIDAlphabet is the character set for generated game IDs
const GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GameIDLength is the length of generated game IDs
const GameIDLength = 12

// Controller manages game lifecycle: creation, move submission and
// persistence. The random source used for tile shuffles and draws is
// injected; give it a seeded source for reproducible games.
type Controller struct {
	storage  storage.Storage
	movegen  *movegen.Service
	clock    clock.Clock
	idRandom random.Random
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game Controller. idRandom generates game IDs
// (typically crypto-backed); random drives tile shuffles and draws.
func NewController(
	store storage.Storage,
	gen *movegen.Service,
	clk clock.Clock,
	idRandom random.Random,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  store,
		movegen:  gen,
		clock:    clk,
		idRandom: idRandom,
		random:   rnd,
		logger:   logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a new game: shuffled pool, two dealt racks, zero scores,
// seat 1 to move. strategies assigns an optional bot strategy per seat;
// seats without one are played externally via move submission.
func (c *Controller) CreateGame(ctx context.Context, strategies map[model.Seat]string) (*model.Game, error) {
	for seat, name := range strategies {
		if !seat.Valid() {
			return nil, model.ErrInvalidSeat
		}
		if !slices.Contains(model.ValidBotStrategies(), name) {
			return nil, model.ErrUnknownStrategy
		}
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.idRandom.String(GameIDLength, GameIDAlphabet)),
		State:      model.NewGameState(c.random),
		Strategies: strategies,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("pool_size", len(game.State.Pool)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	return c.storage.DeleteGame(ctx, gameID)
}

// ListGameIDs returns the IDs of all stored games
func (c *Controller) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGameIDs(ctx)
}

// LegalMoves enumerates the legal moves for the game's current seat
func (c *Controller) LegalMoves(ctx context.Context, gameID model.GameID) ([]model.Move, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.movegen.GenerateMoves(game.State, game.State.CurrentSeat), nil
}

// SubmitPlacement applies an externally submitted tile placement for the
// given seat. The placement is re-validated (tiles in rack, legal geometry,
// every formed word in the lexicon) and scored before any state changes;
// an illegal move is rejected, never silently scored.
func (c *Controller) SubmitPlacement(ctx context.Context, gameID model.GameID, seat model.Seat, placements []model.TilePlacement) (*model.Game, model.Move, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.Move{}, err
	}
	if game.State.IsTerminal() {
		return nil, model.Move{}, model.ErrGameComplete
	}
	if !seat.Valid() {
		return nil, model.Move{}, model.ErrInvalidSeat
	}
	if game.State.CurrentSeat != seat {
		return nil, model.Move{}, model.ErrNotSeatTurn
	}

	score, err := c.movegen.ValidatePlacement(game.State, seat, placements)
	if err != nil {
		return nil, model.Move{}, err
	}

	move := model.Move{Placements: placements, Score: score}
	updated, err := c.applyAndSave(ctx, game, move)
	if err != nil {
		return nil, model.Move{}, err
	}
	return updated, move, nil
}

// SubmitPass applies a pass for the given seat
func (c *Controller) SubmitPass(ctx context.Context, gameID model.GameID, seat model.Seat) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State.IsTerminal() {
		return nil, model.ErrGameComplete
	}
	if !seat.Valid() {
		return nil, model.ErrInvalidSeat
	}
	if game.State.CurrentSeat != seat {
		return nil, model.ErrNotSeatTurn
	}

	return c.applyAndSave(ctx, game, model.PassMove())
}

// ApplyGeneratedMove applies a move produced by the move generator for the
// current seat. It skips re-validation; only the bot service should call it.
func (c *Controller) ApplyGeneratedMove(ctx context.Context, gameID model.GameID, move model.Move) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State.IsTerminal() {
		return nil, model.ErrGameComplete
	}
	return c.applyAndSave(ctx, game, move)
}

func (c *Controller) applyAndSave(ctx context.Context, game *model.Game, move model.Move) (*model.Game, error) {
	acting := game.State.CurrentSeat
	game.State = game.State.ApplyMove(move, c.random)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move applied",
		slog.String("game_id", string(game.ID)),
		slog.Int("seat", int(acting)),
		slog.String("move", move.String()),
		slog.Bool("terminal", game.State.IsTerminal()),
	)

	return game, nil
}
