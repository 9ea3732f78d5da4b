package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbleduel/internal/dependencies/random"
	"github.com/mcoot/scrabbleduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:        id,
		State:     model.NewGameState(random.NewSeeded(1)),
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.newGame("GAME00000001")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameOverwrites() {
	game := s.newGame("GAME00000001")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game.State.Scores[model.Seat1] = 42
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)
	s.Equal(42, retrieved.State.Scores[model.Seat1])
}

func (s *StorageSuite) TestDeleteGame() {
	game := s.newGame("GAME00000001")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.storage.DeleteGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "GAME00000001")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteMissingGameIsNoop() {
	s.NoError(s.storage.DeleteGame(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestListGameIDs() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("GAME00000001")))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("GAME00000002")))

	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"GAME00000001", "GAME00000002"}, ids)
}

func (s *StorageSuite) TestListGameIDsEmpty() {
	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"cat", "cats", "at"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsEmpty() {
	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Empty(words)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplaces() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"cat", "at"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"stare"}))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"stare"}, words)
}

func (s *StorageSuite) TestSavedWordsAreCopied() {
	words := []string{"cat", "at"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	words[0] = "mutated"

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"cat", "at"}, retrieved)
}
