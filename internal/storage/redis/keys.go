package redis

import (
	"fmt"

	"github.com/mcoot/scrabbleduel/internal/model"
)

// Key prefix for all engine data
const keyPrefix = "sduel"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of known game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
