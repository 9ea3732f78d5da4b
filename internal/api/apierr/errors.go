package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scrabbleduel/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeGameComplete     = "GAME_COMPLETE"
	CodeNotYourTurn      = "NOT_YOUR_TURN"
	CodeInvalidSeat      = "INVALID_SEAT"
	CodeUnknownStrategy  = "UNKNOWN_STRATEGY"
	CodeSeatNotBot       = "SEAT_NOT_BOT"
	CodeEmptyPlacement   = "EMPTY_PLACEMENT"
	CodeInvalidPosition  = "INVALID_POSITION"
	CodeCellOccupied     = "CELL_OCCUPIED"
	CodeInvalidTile      = "INVALID_TILE"
	CodeTilesNotInRack   = "TILES_NOT_IN_RACK"
	CodeIllegalPlacement = "ILLEGAL_PLACEMENT"
	CodeInvalidWord      = "INVALID_WORD"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrNotSeatTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not this seat's turn"}}
	case errors.Is(err, model.ErrInvalidSeat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSeat, "Seat must be 1 or 2"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown bot strategy"}}
	case errors.Is(err, model.ErrSeatNotBot):
		return &httpError{http.StatusConflict, APIError{CodeSeatNotBot, "Current seat has no bot strategy"}}
	case errors.Is(err, model.ErrEmptyPlacement):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyPlacement, "Placement must contain at least one tile"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrInvalidTile):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTile, "Tile must be A-Z or the blank"}}
	case errors.Is(err, model.ErrTilesNotInRack):
		return &httpError{http.StatusBadRequest, APIError{CodeTilesNotInRack, "Placed tiles are not all in the rack"}}
	case errors.Is(err, model.ErrIllegalPlacement):
		return &httpError{http.StatusBadRequest, APIError{CodeIllegalPlacement, "Placement violates board rules"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, "Placement forms a word not in the dictionary"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
