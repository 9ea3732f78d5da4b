package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabbleduel/internal/dependencies/clock"
	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/bot"
	"github.com/mcoot/scrabbleduel/internal/services/dictionary"
	"github.com/mcoot/scrabbleduel/internal/services/game"
	"github.com/mcoot/scrabbleduel/internal/services/movegen"
	"github.com/mcoot/scrabbleduel/internal/services/scoring"
	"github.com/mcoot/scrabbleduel/internal/storage"
	"github.com/mcoot/scrabbleduel/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabbleduel/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock      clock.Clock
	Random     random.Random
	GameRandom random.Random

	// Services
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	MovegenService    *movegen.Service
	GameController    *game.Controller
	BotService        *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, dictionary must be loaded manually
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed seeds the tile-draw random source for reproducible games
	// If zero, a crypto-backed source is used
	Seed int64
	// MinimaxDepth is the search depth for the minimax strategy
	// If zero, defaults to bot.DefaultMinimaxDepth
	MinimaxDepth int
	// PlayoutBudget is the total evaluation budget for the Monte Carlo strategy
	// If zero, defaults to bot.DefaultPlayoutBudget
	PlayoutBudget int
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	var gameRnd random.Random = rnd
	if cfg.Seed != 0 {
		gameRnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(store, clk, rnd, gameRnd, cfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	gameRnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store)
	scoringService := scoring.New()
	movegenService := movegen.New(dictService, scoringService)
	gameController := game.NewController(store, movegenService, clk, rnd, gameRnd, logger)

	strategies := map[string]bot.Strategy{
		model.BotStrategyMinimax: bot.NewMinimaxStrategy(movegenService, gameRnd, cfg.MinimaxDepth, logger),
		model.BotStrategyMonteCarlo: bot.NewMonteCarloStrategy(
			movegenService,
			bot.ScoreDifferenceEvaluator{},
			gameRnd,
			cfg.PlayoutBudget,
			logger,
		),
		model.BotStrategyGreedy: bot.NewGreedyStrategy(movegenService),
		model.BotStrategyRandom: bot.NewRandomStrategy(movegenService, gameRnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		GameRandom:        gameRnd,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		MovegenService:    movegenService,
		GameController:    gameController,
		BotService:        botService,
	}
}
