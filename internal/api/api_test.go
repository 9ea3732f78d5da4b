package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabbleduel/internal/api"
	"github.com/mcoot/scrabbleduel/internal/api/apierr"
	"github.com/mcoot/scrabbleduel/internal/api/response"
	"github.com/mcoot/scrabbleduel/internal/factory"
	"github.com/mcoot/scrabbleduel/internal/model"
	"github.com/mcoot/scrabbleduel/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T, words []string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests: production factory, seeded tile draws
	app, err := factory.New(factory.Config{Seed: 1})
	require.NoError(t, err)
	if len(words) > 0 {
		require.NoError(t, app.DictionaryService.LoadWords(words))
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BotService:     app.BotService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func defaultWords() []string {
	return []string{"at", "it", "ta", "cat", "cats", "tea", "eat", "ate"}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createGame(t *testing.T, strategies map[string]string) response.Game {
	t.Helper()

	var body any
	if strategies != nil {
		body = map[string]any{"strategies": strategies}
	}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

// forceRack overwrites a seat's rack in storage for a predictable placement
func (ts *testServer) forceRack(t *testing.T, id string, seat model.Seat, rack model.Rack) {
	t.Helper()

	game, err := ts.storage.GetGame(context.Background(), model.GameID(id))
	require.NoError(t, err)
	game.State.Racks[seat] = rack
	require.NoError(t, ts.storage.SaveGame(context.Background(), game))
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t, defaultWords())

	game := ts.createGame(t, nil)

	assert.NotEmpty(t, game.ID)
	assert.Len(t, game.Board, 15)
	assert.Equal(t, 1, game.CurrentSeat)
	assert.Equal(t, 86, game.PoolCount)
	assert.Len(t, game.Racks["1"], 7)
	assert.Len(t, game.Racks["2"], 7)
	assert.Equal(t, 0, game.Scores["1"])
	assert.False(t, game.Terminal)
	assert.Nil(t, game.Winner)
}

func TestCreateGameWithStrategies(t *testing.T) {
	ts := newTestServer(t, defaultWords())

	game := ts.createGame(t, map[string]string{"1": "minimax", "2": "greedy"})

	assert.Equal(t, "minimax", game.Strategies["1"])
	assert.Equal(t, "greedy", game.Strategies["2"])
}

func TestCreateGameUnknownStrategy(t *testing.T) {
	ts := newTestServer(t, defaultWords())

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"strategies": map[string]string{"1": "psychic"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownStrategy, errorCode(t, rr))
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, created.ID, game.ID)
}

func TestGetMissingGame(t *testing.T) {
	ts := newTestServer(t, defaultWords())

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Contains(t, list.GameIDs, created.ID)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLegalMoves(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+created.ID+"/moves", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.MoveList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.NotEmpty(t, list.Moves)
	assert.True(t, list.Moves[len(list.Moves)-1].Pass)
}

func TestSubmitPlacement(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)
	ts.forceRack(t, created.ID, model.Seat1, model.Rack{'C', 'A', 'T', 'S', 'X', 'X', 'X'})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 1,
		"placements": []map[string]any{
			{"row": 7, "col": 6, "letter": "C"},
			{"row": 7, "col": 7, "letter": "A"},
			{"row": 7, "col": 8, "letter": "T"},
			{"row": 7, "col": 9, "letter": "S"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.MoveResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))

	assert.Equal(t, "CATS", result.Move.Word)
	assert.Equal(t, 12, result.Move.Score)
	assert.Equal(t, 12, result.Game.Scores["1"])
	assert.Equal(t, 2, result.Game.CurrentSeat)
	assert.Contains(t, result.Game.Board[7], "CATS")
}

func TestSubmitPlacementInvalidWord(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)
	ts.forceRack(t, created.ID, model.Seat1, model.Rack{'X', 'Y', 'Z'})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 1,
		"placements": []map[string]any{
			{"row": 7, "col": 7, "letter": "X"},
			{"row": 7, "col": 8, "letter": "Y"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidWord, errorCode(t, rr))
}

func TestSubmitPlacementOutOfTurn(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 2,
		"placements": []map[string]any{
			{"row": 7, "col": 7, "letter": "A"},
		},
	})

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeNotYourTurn, errorCode(t, rr))
}

func TestSubmitPassEndsGameAfterTwo(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 1,
		"pass": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.MoveResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Move.Pass)
	assert.Equal(t, 1, result.Game.Passes)
	assert.False(t, result.Game.Terminal)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 2,
		"pass": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Game.Terminal)

	// A complete game rejects further moves
	rr = ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", map[string]any{
		"seat": 1,
		"pass": true,
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameComplete, errorCode(t, rr))
}

func TestBotMove(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, map[string]string{"1": "greedy"})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/bot-move", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.MoveResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Game.CurrentSeat)
}

func TestBotMoveSeatNotBot(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, map[string]string{"2": "greedy"})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/bot-move", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeSeatNotBot, errorCode(t, rr))
}

func TestSelfPlay(t *testing.T) {
	// No dictionary: both bots pass and the game ends on the second pass
	ts := newTestServer(t, nil)
	created := ts.createGame(t, map[string]string{"1": "greedy", "2": "greedy"})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.ID+"/self-play", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.SelfPlayResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 2, result.MovesPlayed)
	assert.True(t, result.Game.Terminal)
}

func TestInvalidRequestBody(t *testing.T) {
	ts := newTestServer(t, defaultWords())
	created := ts.createGame(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games/"+created.ID+"/moves", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}
