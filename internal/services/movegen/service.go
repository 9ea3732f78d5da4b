package movegen

import (
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/dictionary"
	"github.com/mcoot/scrabbleduel/internal/services/scoring"
)

// Service enumerates legal moves for a game state. Generation is exponential
// in rack size (every ordering of every sub-multiset of the rack is tried
// against every anchor and orientation), so candidates are evaluated on a
// single reusable scratch board instead of allocating a board per trial.
type Service struct {
	dictionary dictionary.Oracle
	scoring    scoring.ServiceInterface
}

// New creates a new move generator Service
func New(dict dictionary.Oracle, scoringService scoring.ServiceInterface) *Service {
	return &Service{
		dictionary: dict,
		scoring:    scoringService,
	}
}

// GenerateMoves returns every legal move for the given seat, as a set (no
// duplicate placements), with Pass appended last. A terminal state yields no
// moves at all.
func (s *Service) GenerateMoves(state *model.GameState, seat model.Seat) []model.Move {
	if state.IsTerminal() {
		return nil
	}

	rack := state.Racks[seat]

	var moves []model.Move
	seen := make(map[string]struct{})
	emit := func(m model.Move) {
		key := m.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		moves = append(moves, m)
	}

	if state.Board.IsBlank() {
		s.firstMoves(state.Board, rack, emit)
	} else {
		s.connectedMoves(state.Board, rack, emit)
	}

	// Passing is always legal
	moves = append(moves, model.PassMove())
	return moves
}

// firstMoves generates opening placements: every lexicon-valid ordering of
// rack tiles, in both orientations, at every span that covers the center
// cell. The board is empty so there are no cross-words to check.
func (s *Service) firstMoves(board *model.Board, rack model.Rack, emit func(model.Move)) {
	scratch := board.Clone()
	center := model.Center(board.Size)

	forEachPermutation(rack, dictionary.MinWordLength, func(perm []rune) {
		if !s.dictionary.IsValidWord(string(perm)) {
			return
		}
		length := len(perm)

		// Horizontal spans through center
		for startCol := max(0, center.Col-length+1); startCol <= min(center.Col, board.Size-length); startCol++ {
			placements := make([]model.TilePlacement, length)
			for i, letter := range perm {
				placements[i] = model.TilePlacement{
					Position: model.Position{Row: center.Row, Col: startCol + i},
					Letter:   letter,
				}
			}
			emit(s.scoredMove(scratch, placements))
		}

		// Vertical spans through center
		for startRow := max(0, center.Row-length+1); startRow <= min(center.Row, board.Size-length); startRow++ {
			placements := make([]model.TilePlacement, length)
			for i, letter := range perm {
				placements[i] = model.TilePlacement{
					Position: model.Position{Row: startRow + i, Col: center.Col},
					Letter:   letter,
				}
			}
			emit(s.scoredMove(scratch, placements))
		}
	})
}

// connectedMoves generates placements that extend the existing board. For
// each anchor (empty cell next to a filled one), each orientation, and each
// lexicon-valid rack permutation, the candidate word is slid so the anchor
// takes each position within it; cells already filled must match the
// permutation letter exactly.
func (s *Service) connectedMoves(board *model.Board, rack model.Rack, emit func(model.Move)) {
	scratch := board.Clone()
	anchors := board.Anchors()

	var placements []model.TilePlacement

	for _, anchor := range anchors {
		for _, horizontal := range []bool{true, false} {
			forEachPermutation(rack, dictionary.MinWordLength, func(perm []rune) {
				word := string(perm)
				if !s.dictionary.IsValidWord(word) {
					return
				}
				length := len(perm)

				for offset := 0; offset < length; offset++ {
					start := anchor
					if horizontal {
						start.Col -= offset
						if start.Col < 0 || start.Col+length > board.Size {
							continue
						}
					} else {
						start.Row -= offset
						if start.Row < 0 || start.Row+length > board.Size {
							continue
						}
					}

					// Walk the span: empty cells take a new tile, filled
					// cells must match the permutation letter
					placements = placements[:0]
					conflict := false
					for i, letter := range perm {
						pos := start
						if horizontal {
							pos.Col += i
						} else {
							pos.Row += i
						}
						switch board.Get(pos) {
						case 0:
							placements = append(placements, model.TilePlacement{Position: pos, Letter: letter})
						case letter:
							// Existing tile absorbed into the word
						default:
							conflict = true
						}
						if conflict {
							break
						}
					}
					if conflict || len(placements) == 0 {
						continue
					}

					// One physical tile per new letter instance
					if !rack.Contains(lettersOf(placements)) {
						continue
					}

					for _, p := range placements {
						scratch.Set(p.Position, p.Letter)
					}
					if s.placementWordsValid(scratch, anchor, placements, horizontal) {
						emit(s.scoredPlacedMove(scratch, placements))
					}
					for _, p := range placements {
						scratch.Clear(p.Position)
					}
				}
			})
		}
	}
}

// placementWordsValid checks the main word through the anchor (which may
// extend past the permutation span into pre-existing tiles) and every
// cross-word of length > 1 through a newly placed tile. The board must
// already contain the placed tiles.
func (s *Service) placementWordsValid(board *model.Board, anchor model.Position, placed []model.TilePlacement, horizontal bool) bool {
	if _, main := board.RunThrough(anchor, horizontal); !s.dictionary.IsValidWord(main) {
		return false
	}
	for _, p := range placed {
		if _, cross := board.RunThrough(p.Position, !horizontal); len(cross) > 1 && !s.dictionary.IsValidWord(cross) {
			return false
		}
	}
	return true
}

// scoredMove places the tiles on the scratch board, scores them, restores
// the board, and returns the move
func (s *Service) scoredMove(scratch *model.Board, placements []model.TilePlacement) model.Move {
	for _, p := range placements {
		scratch.Set(p.Position, p.Letter)
	}
	move := s.scoredPlacedMove(scratch, placements)
	for _, p := range placements {
		scratch.Clear(p.Position)
	}
	return move
}

// scoredPlacedMove scores tiles already written to the board and returns
// the move with its own copy of the placements
func (s *Service) scoredPlacedMove(board *model.Board, placements []model.TilePlacement) model.Move {
	owned := make([]model.TilePlacement, len(placements))
	copy(owned, placements)
	return model.Move{
		Placements: owned,
		Score:      s.scoring.ScorePlacement(board, owned),
	}
}

func lettersOf(placements []model.TilePlacement) []rune {
	letters := make([]rune, len(placements))
	for i, p := range placements {
		letters[i] = p.Letter
	}
	return letters
}
