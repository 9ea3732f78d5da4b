package scoring

import (
	"github.com/mcoot/scrabbleduel/internal/model"
)

// BingoBonus is the flat bonus for playing a full rack in one move
const BingoBonus = 50

// Service scores tile placements, including premium multipliers and
// cross-word contributions
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScorePlacement computes the point value of a placement. The board must
// already contain the placed tiles (callers keep a scratch board for this);
// placed identifies which of them are new, since premiums apply only to
// newly placed tiles.
//
// The total is the main-word score, plus every perpendicular cross-word of
// length > 1 through a new tile, plus the bingo bonus for a full rack.
func (s *Service) ScorePlacement(board *model.Board, placed []model.TilePlacement) int {
	if len(placed) == 0 {
		return 0
	}

	// Horizontal if all rows equal; a single tile counts as horizontal
	horizontal := true
	for _, p := range placed[1:] {
		if p.Position.Row != placed[0].Position.Row {
			horizontal = false
			break
		}
	}

	isNew := make(map[model.Position]bool, len(placed))
	for _, p := range placed {
		isNew[p.Position] = true
	}

	total := s.scoreRun(board, placed[0].Position, horizontal, isNew)

	// Cross-words: every new tile lies on the main line, so each
	// perpendicular run contains exactly that one new tile
	for _, p := range placed {
		_, word := board.RunThrough(p.Position, !horizontal)
		if len(word) > 1 {
			total += s.scoreRun(board, p.Position, !horizontal, map[model.Position]bool{p.Position: true})
		}
	}

	if len(placed) == model.RackSize {
		total += BingoBonus
	}

	return total
}

// scoreRun scores the maximal contiguous run through pos in the given
// orientation. Letter premiums multiply the cell's letter value and word
// premiums accumulate into the run multiplier, in both cases only for cells
// in the isNew set.
func (s *Service) scoreRun(board *model.Board, pos model.Position, horizontal bool, isNew map[model.Position]bool) int {
	start, word := board.RunThrough(pos, horizontal)
	if word == "" {
		return 0
	}

	letterSum := 0
	wordMultiplier := 1

	cur := start
	for range word {
		letterScore := model.LetterValue(board.Get(cur))
		if isNew[cur] {
			switch board.PremiumAt(cur) {
			case model.PremiumDoubleLetter:
				letterScore *= 2
			case model.PremiumTripleLetter:
				letterScore *= 3
			case model.PremiumDoubleWord:
				wordMultiplier *= 2
			case model.PremiumTripleWord:
				wordMultiplier *= 3
			}
		}
		letterSum += letterScore
		if horizontal {
			cur.Col++
		} else {
			cur.Row++
		}
	}

	return letterSum * wordMultiplier
}

// ServiceInterface is the scoring capability used by the move generator
type ServiceInterface interface {
	ScorePlacement(board *model.Board, placed []model.TilePlacement) int
}

var _ ServiceInterface = (*Service)(nil)
