package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/scrabbleduel/internal/dependencies/mocks"
	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing. Game IDs come from the
// MockRandom queue; tile shuffles and draws come from a fixed-seed source so
// deals are reproducible run to run.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	gameRnd := random.NewSeeded(1)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, gameRnd, Config{}, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"at", "it", "ta", "ti", "to",
		"act", "art", "ate", "cat", "eat", "oat", "rat", "sat", "tar", "tea",
		"arts", "cart", "cats", "cast", "east", "rate", "rats", "seat", "star", "tars",
		"carts", "rates", "stare", "tears",
	}
	return t.DictionaryService.LoadWords(words)
}
