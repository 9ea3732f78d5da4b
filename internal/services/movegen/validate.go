package movegen

import (
	"github.com/mcoot/scrabbleduel/internal/model"
)

// ValidatePlacement re-validates an externally submitted placement for the
// given seat and returns its computed score. Moves produced by GenerateMoves
// never need this; anything crossing the service boundary does, so an
// illegal submission is rejected instead of silently scored.
func (s *Service) ValidatePlacement(state *model.GameState, seat model.Seat, placements []model.TilePlacement) (int, error) {
	if state.IsTerminal() {
		return 0, model.ErrGameComplete
	}
	if len(placements) == 0 {
		return 0, model.ErrEmptyPlacement
	}

	board := state.Board
	occupied := make(map[model.Position]struct{}, len(placements))
	for _, p := range placements {
		if !board.IsValidPosition(p.Position) {
			return 0, model.ErrInvalidPosition
		}
		if !model.IsKnownTile(p.Letter) {
			return 0, model.ErrInvalidTile
		}
		if !board.IsEmpty(p.Position) {
			return 0, model.ErrCellOccupied
		}
		if _, dup := occupied[p.Position]; dup {
			return 0, model.ErrIllegalPlacement
		}
		occupied[p.Position] = struct{}{}
	}

	horizontal, ok := placementOrientation(placements)
	if !ok {
		return 0, model.ErrIllegalPlacement
	}

	if !state.Racks[seat].Contains(lettersOf(placements)) {
		return 0, model.ErrTilesNotInRack
	}

	scratch := board.Clone()
	for _, p := range placements {
		scratch.Set(p.Position, p.Letter)
	}

	// The main run must absorb every placed tile: combined with existing
	// tiles the placement forms one contiguous line
	start, main := scratch.RunThrough(placements[0].Position, horizontal)
	for _, p := range placements {
		if !runCovers(start, len(main), horizontal, p.Position) {
			return 0, model.ErrIllegalPlacement
		}
	}

	if board.IsBlank() {
		// Opening move: must cover the center cell
		if !runCovers(start, len(main), horizontal, model.Center(board.Size)) {
			return 0, model.ErrIllegalPlacement
		}
	} else {
		// Connected move: must touch at least one pre-existing tile,
		// either in the main run or via a cross-word
		if !touchesExisting(board, placements, len(main)) {
			return 0, model.ErrIllegalPlacement
		}
	}

	// Every run of length > 1 through a new tile must be a word
	if len(main) > 1 && !s.dictionary.IsValidWord(main) {
		return 0, model.ErrInvalidWord
	}
	crossCount := 0
	for _, p := range placements {
		if _, cross := scratch.RunThrough(p.Position, !horizontal); len(cross) > 1 {
			crossCount++
			if !s.dictionary.IsValidWord(cross) {
				return 0, model.ErrInvalidWord
			}
		}
	}
	if len(main) < 2 && crossCount == 0 {
		return 0, model.ErrIllegalPlacement
	}

	return s.scoring.ScorePlacement(scratch, placements), nil
}

// placementOrientation classifies a placement as horizontal (all rows equal)
// or vertical (all columns equal). A single tile counts as horizontal.
// Returns false if the tiles do not lie on a single line.
func placementOrientation(placements []model.TilePlacement) (horizontal bool, ok bool) {
	sameRow, sameCol := true, true
	for _, p := range placements[1:] {
		if p.Position.Row != placements[0].Position.Row {
			sameRow = false
		}
		if p.Position.Col != placements[0].Position.Col {
			sameCol = false
		}
	}
	if sameRow {
		return true, true
	}
	return false, sameCol
}

// runCovers reports whether the run starting at start with the given length
// and orientation includes pos
func runCovers(start model.Position, length int, horizontal bool, pos model.Position) bool {
	if horizontal {
		return pos.Row == start.Row && pos.Col >= start.Col && pos.Col < start.Col+length
	}
	return pos.Col == start.Col && pos.Row >= start.Row && pos.Row < start.Row+length
}

// touchesExisting reports whether a placement connects to the tiles already
// on the board: the main run is longer than the new tiles alone, or a new
// tile has a pre-existing neighbor
func touchesExisting(board *model.Board, placements []model.TilePlacement, mainLen int) bool {
	if mainLen > len(placements) {
		return true
	}
	for _, p := range placements {
		if board.HasFilledNeighbor(p.Position) {
			return true
		}
	}
	return false
}
