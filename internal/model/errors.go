package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrGameComplete  = errors.New("game is already complete")
	ErrNotSeatTurn   = errors.New("not this seat's turn")
	ErrInvalidSeat   = errors.New("invalid seat")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrSeatNotBot    = errors.New("seat is not played by a bot")

	// Move errors
	ErrEmptyPlacement   = errors.New("placement contains no tiles")
	ErrInvalidPosition  = errors.New("invalid board position")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidTile      = errors.New("invalid tile symbol")
	ErrTilesNotInRack   = errors.New("tiles are not in the rack")
	ErrIllegalPlacement = errors.New("illegal tile placement")
	ErrInvalidWord      = errors.New("word is not in the dictionary")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
