package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabbleduel/internal/api/apierr"
	"github.com/mcoot/scrabbleduel/internal/api/request"
	"github.com/mcoot/scrabbleduel/internal/api/response"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/services/bot"
	"github.com/mcoot/scrabbleduel/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, botService *bot.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
			return
		}
	}

	strategies := make(map[model.Seat]string, len(req.Strategies))
	for seatStr, name := range req.Strategies {
		seatNum, err := strconv.Atoi(seatStr)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("strategy seats must be seat numbers"))
			return
		}
		strategies[model.Seat(seatNum)] = name
	}

	g, err := h.gameController.CreateGame(r.Context(), strategies)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGameIDs(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := response.GameList{GameIDs: make([]string, len(ids))}
	for i, id := range ids {
		out.GameIDs[i] = string(id)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// LegalMoves handles GET /api/v1/games/{id}/moves
func (h *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.gameController.LegalMoves(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveListFromModel(moves))
}

// SubmitMove handles POST /api/v1/games/{id}/moves. Placements are
// re-validated against the rack, board geometry and dictionary before
// applying.
func (h *GameHandler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	seat := model.Seat(req.Seat)

	if req.Pass {
		g, err := h.gameController.SubmitPass(r.Context(), gameID(r), seat)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.MoveResult{
			Move: response.MoveFromModel(model.PassMove()),
			Game: response.GameFromModel(g),
		})
		return
	}

	placements := make([]model.TilePlacement, len(req.Placements))
	for i, p := range req.Placements {
		if len(p.Letter) != 1 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("each placement letter must be a single character"))
			return
		}
		placements[i] = model.TilePlacement{
			Position: model.Position{Row: p.Row, Col: p.Col},
			Letter:   rune(p.Letter[0]),
		}
	}

	g, move, err := h.gameController.SubmitPlacement(r.Context(), gameID(r), seat, placements)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResult{
		Move: response.MoveFromModel(move),
		Game: response.GameFromModel(g),
	})
}

// BotMove handles POST /api/v1/games/{id}/bot-move
func (h *GameHandler) BotMove(w http.ResponseWriter, r *http.Request) {
	g, move, err := h.botService.PlayBotMove(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResult{
		Move: response.MoveFromModel(move),
		Game: response.GameFromModel(g),
	})
}

// SelfPlay handles POST /api/v1/games/{id}/self-play
func (h *GameHandler) SelfPlay(w http.ResponseWriter, r *http.Request) {
	g, played, err := h.botService.SelfPlay(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SelfPlayResult{
		MovesPlayed: played,
		Game:        response.GameFromModel(g),
	})
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
