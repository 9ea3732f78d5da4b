package dictionary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbleduel/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadWords() {
	words := []string{"apple", "banana", "cherry"}
	err := s.service.LoadWords(words)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestIsValidWordAfterLoading() {
	words := []string{"apple", "banana", "cherry"}
	_ = s.service.LoadWords(words)

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("banana"))
	s.False(s.service.IsValidWord("grape"))
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	words := []string{"Apple", "BANANA"}
	_ = s.service.LoadWords(words)

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("APPLE"))
	s.True(s.service.IsValidWord("banana"))
}

func (s *ServiceSuite) TestIsValidWordRequiresMinLength() {
	words := []string{"a", "ab", "abc"}
	_ = s.service.LoadWords(words)

	s.False(s.service.IsValidWord("a")) // Too short (stored but rejected)
	s.True(s.service.IsValidWord("ab"))
	s.True(s.service.IsValidWord("abc"))
}

func (s *ServiceSuite) TestIsValidWordWhenNotLoaded() {
	s.False(s.service.IsValidWord("apple"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	words := []string{"test", "word", "example"}
	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestReloadReplacesWords() {
	_ = s.service.LoadWords([]string{"old"})
	_ = s.service.LoadWords([]string{"new", "words"})

	s.Equal(2, s.service.WordCount())
	s.False(s.service.IsValidWord("old"))
	s.True(s.service.IsValidWord("new"))
}
