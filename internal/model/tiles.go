package model

import "github.com/mcoot/scrabbleduel/internal/dependencies/random"

// BlankTile is the wildcard tile symbol. It scores zero points and,
// since blank letter assignment is unsupported, never forms part of a word.
const BlankTile = '_'

// RackSize is the number of tiles each player holds
const RackSize = 7

// TotalTileCount is the number of tiles in a fresh standard pool
const TotalTileCount = 100

// letterValues maps each tile to its point value
var letterValues = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
	'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
	'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
	'Y': 4, 'Z': 10, BlankTile: 0,
}

// tileDistribution is the standard 100-tile distribution, including two blanks
var tileDistribution = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
	'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
	'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
	'Y': 2, 'Z': 1, BlankTile: 2,
}

// LetterValue returns the point value of a tile, or 0 for unknown tiles
func LetterValue(letter rune) int {
	return letterValues[letter]
}

// IsKnownTile returns true if the rune is a playable tile symbol
func IsKnownTile(letter rune) bool {
	_, ok := letterValues[letter]
	return ok
}

// Rack is a player's hand of tiles, treated as a multiset
type Rack []rune

// Clone returns a copy of the rack
func (r Rack) Clone() Rack {
	clone := make(Rack, len(r))
	copy(clone, r)
	return clone
}

// Remove returns a copy of the rack with one physical tile removed per
// letter instance. Duplicate letters decrement the multiset; it is an
// error if any requested tile is not held.
func (r Rack) Remove(letters []rune) (Rack, error) {
	remaining := r.Clone()
	for _, letter := range letters {
		found := false
		for i, held := range remaining {
			if held == letter {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrTilesNotInRack
		}
	}
	return remaining, nil
}

// Contains reports whether the rack jointly holds one physical tile per
// requested letter instance (duplicate-aware)
func (r Rack) Contains(letters []rune) bool {
	_, err := r.Remove(letters)
	return err == nil
}

// TilePool is the multiset of tiles remaining to be drawn
type TilePool []rune

// NewTilePool builds an unshuffled pool with the standard distribution
func NewTilePool() TilePool {
	pool := make(TilePool, 0, TotalTileCount)
	for _, letter := range tileOrder() {
		for i := 0; i < tileDistribution[letter]; i++ {
			pool = append(pool, letter)
		}
	}
	return pool
}

// tileOrder returns tile symbols in a fixed order so that pool construction
// (and therefore seeded shuffling) is deterministic across runs
func tileOrder() []rune {
	order := make([]rune, 0, len(tileDistribution))
	for letter := 'A'; letter <= 'Z'; letter++ {
		order = append(order, letter)
	}
	order = append(order, BlankTile)
	return order
}

// Clone returns a copy of the pool
func (p TilePool) Clone() TilePool {
	clone := make(TilePool, len(p))
	copy(clone, p)
	return clone
}

// Shuffle permutes the pool in place using the given random source
func (p TilePool) Shuffle(rnd random.Random) {
	rnd.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// Draw removes up to count tiles from the pool without replacement and
// returns them. Fewer tiles are returned if the pool is depleted.
func (p *TilePool) Draw(count int, rnd random.Random) []rune {
	pool := *p
	if count > len(pool) {
		count = len(pool)
	}
	drawn := make([]rune, 0, count)
	for i := 0; i < count; i++ {
		idx := rnd.Intn(len(pool))
		drawn = append(drawn, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	*p = pool
	return drawn
}
