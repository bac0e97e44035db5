// FILE: internal/server/http/handler_test.go
package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"checkora/internal/board"
	"checkora/internal/core"
	"checkora/internal/engine"
	"checkora/internal/server/processor"
	"checkora/internal/server/service"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	svc := service.New(nil, []byte("test-secret-minimum-32-characters-long"))
	proc := processor.New(svc, engine.New(""))
	return NewFiberApp(proc, svc, true)
}

func jsonRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode body %q: %v", data, err)
	}
	return v
}

func createGame(t *testing.T, app *fiber.App) core.GameResponse {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/v1/games", map[string]string{}))
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create game: status %d", resp.StatusCode)
	}
	return decodeBody[core.GameResponse](t, resp)
}

func intPtr(n int) *int { return &n }

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}

	body := decodeBody[map[string]any](t, resp)
	if body["status"] != "healthy" {
		t.Errorf("unexpected status: %v", body["status"])
	}
	if body["storage"] != "disabled" {
		t.Errorf("expected storage disabled, got %v", body["storage"])
	}
}

func TestCreateGameDefaults(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	if game.GameID == "" {
		t.Fatal("missing game ID")
	}
	if game.Board != board.StartingPosition {
		t.Errorf("unexpected board: %s", game.Board)
	}
	if game.Turn != "white" {
		t.Errorf("expected white to move, got %s", game.Turn)
	}
	if game.State != "ongoing" {
		t.Errorf("expected ongoing state, got %s", game.State)
	}
}

func TestCreateGameRejectsBadBoard(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/games", map[string]string{
		"board": "too-short",
	}))
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestMoveFlow(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	// e2 -> e4
	resp, err := app.Test(jsonRequest("POST", "/api/v1/games/"+game.GameID+"/moves", core.MoveRequest{
		FromRow: intPtr(6), FromCol: intPtr(4), ToRow: intPtr(4), ToCol: intPtr(4),
	}))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("move: status %d", resp.StatusCode)
	}

	updated := decodeBody[core.GameResponse](t, resp)
	if updated.Turn != "black" {
		t.Errorf("expected black to move, got %s", updated.Turn)
	}
	if len(updated.MoveHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(updated.MoveHistory))
	}
	if updated.MoveHistory[0].Notation != "e2 -> e4" {
		t.Errorf("unexpected notation: %q", updated.MoveHistory[0].Notation)
	}
}

func TestIllegalMoveRejectedWithReason(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	// Pawn cannot advance three squares
	resp, err := app.Test(jsonRequest("POST", "/api/v1/games/"+game.GameID+"/moves", core.MoveRequest{
		FromRow: intPtr(6), FromCol: intPtr(4), ToRow: intPtr(3), ToCol: intPtr(4),
	}))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	errResp := decodeBody[core.ErrorResponse](t, resp)
	if errResp.Code != core.ErrInvalidMove {
		t.Errorf("expected code %s, got %s", core.ErrInvalidMove, errResp.Code)
	}
	if errResp.Details != "Illegal move for this piece" {
		t.Errorf("unexpected details: %q", errResp.Details)
	}
}

func TestMoveRequiresAllCoordinates(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/games/"+game.GameID+"/moves", map[string]int{
		"from_row": 6, "from_col": 4, "to_row": 4,
	}))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestValidMovesEndpoint(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/"+game.GameID+"/moves?row=6&col=4", nil))
	if err != nil {
		t.Fatalf("valid moves: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("valid moves: status %d", resp.StatusCode)
	}

	moves := decodeBody[core.ValidMovesResponse](t, resp)
	if len(moves.ValidMoves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves.ValidMoves))
	}

	// Empty square still returns a well-formed empty list
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/games/"+game.GameID+"/moves?row=4&col=4", nil))
	if err != nil {
		t.Fatalf("valid moves: %v", err)
	}
	empty := decodeBody[core.ValidMovesResponse](t, resp)
	if empty.ValidMoves == nil || len(empty.ValidMoves) != 0 {
		t.Fatalf("expected empty list, got %v", empty.ValidMoves)
	}
}

func TestConcurrentValidMovesRequests(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/"+game.GameID+"/moves?row=6&col=4", nil))
			if err != nil {
				t.Errorf("valid moves: %v", err)
				return
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Errorf("valid moves: status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()
}

func TestUndoEndpoint(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/games/"+game.GameID+"/moves", core.MoveRequest{
		FromRow: intPtr(6), FromCol: intPtr(4), ToRow: intPtr(4), ToCol: intPtr(4),
	}))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("move failed")
	}

	resp, err = app.Test(jsonRequest("POST", "/api/v1/games/"+game.GameID+"/undo", map[string]int{
		"count": 1,
	}))
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("undo: status %d", resp.StatusCode)
	}

	updated := decodeBody[core.GameResponse](t, resp)
	if updated.Board != board.StartingPosition {
		t.Errorf("position not restored")
	}
	if updated.Turn != "white" {
		t.Errorf("expected white to move, got %s", updated.Turn)
	}
}

func TestGetGameNotFound(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/00000000-0000-0000-0000-000000000000", nil))
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestBadGameIDFormat(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteGame(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/games/"+game.GameID, nil))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/games/"+game.GameID, nil))
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestGetBoardASCII(t *testing.T) {
	app := newTestApp()
	game := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/"+game.GameID+"/board", nil))
	if err != nil {
		t.Fatalf("get board: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get board: status %d", resp.StatusCode)
	}

	body := decodeBody[core.BoardResponse](t, resp)
	if body.Board != board.StartingPosition {
		t.Errorf("unexpected board encoding")
	}
	if body.ASCII == "" {
		t.Error("missing ASCII rendering")
	}
}

func TestContentTypeEnforced(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/games", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.StatusCode)
	}
}

func TestAuthEndpointsRequireStorage(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", map[string]string{
		"username": "alice",
		"password": "password1",
	}))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// No storage configured: user creation fails server-side
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 without storage, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/auth/me", nil))
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
