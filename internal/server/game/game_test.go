// FILE: internal/server/game/game_test.go
package game

import (
	"strings"
	"sync"
	"testing"

	"checkora/internal/board"
	"checkora/internal/core"
)

func newTestGame() *Game {
	return New(board.StartingPosition, core.ColorWhite, "")
}

func TestApplyMoveUpdatesPositionAndTurn(t *testing.T) {
	g := newTestGame()

	entry, err := g.ApplyMove(core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4})
	if err != nil {
		t.Fatalf("apply move: %v", err)
	}

	if entry.Notation != "e2 -> e4" {
		t.Errorf("unexpected notation: %q", entry.Notation)
	}
	if entry.Piece != "P" {
		t.Errorf("unexpected piece: %q", entry.Piece)
	}
	if entry.Captured != "" {
		t.Errorf("unexpected capture: %q", entry.Captured)
	}
	if g.Turn() != core.ColorBlack {
		t.Errorf("expected black to move, got %s", g.Turn())
	}
	if g.MoveCount() != 1 {
		t.Errorf("expected 1 move, got %d", g.MoveCount())
	}

	enc := g.CurrentEncoding()
	if enc[6*8+4] != '.' {
		t.Errorf("origin not cleared: %c", enc[6*8+4])
	}
	if enc[4*8+4] != 'P' {
		t.Errorf("destination not occupied: %c", enc[4*8+4])
	}
}

func TestApplyMoveRecordsCapture(t *testing.T) {
	enc := []byte(strings.Repeat(".", 64))
	enc[7*8+0] = 'R'
	enc[7*8+7] = 'r'
	g := New(string(enc), core.ColorWhite, "")

	entry, err := g.ApplyMove(core.Square{Row: 7, Col: 0}, core.Square{Row: 7, Col: 7})
	if err != nil {
		t.Fatalf("apply move: %v", err)
	}
	if entry.Captured != "r" {
		t.Fatalf("expected captured rook, got %q", entry.Captured)
	}

	captured := g.Captured()
	if got := captured["white"]; len(got) != 1 || got[0] != "r" {
		t.Fatalf("unexpected white capture list: %v", got)
	}
	if got := captured["black"]; len(got) != 0 {
		t.Fatalf("unexpected black capture list: %v", got)
	}
}

func TestApplyMoveRejectedWhenOver(t *testing.T) {
	g := newTestGame()
	g.SetState(core.StateWhiteWins)

	if _, err := g.ApplyMove(core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4}); err == nil {
		t.Fatal("expected error on finished game")
	}
}

func TestUndoMovesRestoresPosition(t *testing.T) {
	g := newTestGame()

	if _, err := g.ApplyMove(core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4}); err != nil {
		t.Fatalf("move 1: %v", err)
	}
	if _, err := g.ApplyMove(core.Square{Row: 1, Col: 4}, core.Square{Row: 3, Col: 4}); err != nil {
		t.Fatalf("move 2: %v", err)
	}

	if err := g.UndoMoves(2); err != nil {
		t.Fatalf("undo: %v", err)
	}

	if g.CurrentEncoding() != board.StartingPosition {
		t.Errorf("position not restored")
	}
	if g.Turn() != core.ColorWhite {
		t.Errorf("expected white to move after undo, got %s", g.Turn())
	}
	if g.MoveCount() != 0 {
		t.Errorf("expected 0 moves, got %d", g.MoveCount())
	}
	if len(g.History()) != 0 {
		t.Errorf("expected empty history")
	}
}

func TestUndoMovesRebuildsCaptures(t *testing.T) {
	enc := []byte(strings.Repeat(".", 64))
	enc[7*8+0] = 'R'
	enc[7*8+7] = 'r'
	enc[0] = 'k'
	g := New(string(enc), core.ColorWhite, "")

	if _, err := g.ApplyMove(core.Square{Row: 7, Col: 0}, core.Square{Row: 7, Col: 7}); err != nil {
		t.Fatalf("capture move: %v", err)
	}
	if err := g.UndoMoves(1); err != nil {
		t.Fatalf("undo: %v", err)
	}

	if got := g.Captured()["white"]; len(got) != 0 {
		t.Fatalf("capture list not rebuilt: %v", got)
	}
}

func TestUndoMovesBounds(t *testing.T) {
	g := newTestGame()

	if err := g.UndoMoves(1); err == nil {
		t.Error("expected error undoing with no moves")
	}
	if err := g.UndoMoves(0); err == nil {
		t.Error("expected error for zero count")
	}

	if _, err := g.ApplyMove(core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := g.UndoMoves(2); err == nil {
		t.Error("expected error undoing more moves than played")
	}
}

func TestMoveInvalidatesCache(t *testing.T) {
	g := newTestGame()
	origin := core.Square{Row: 6, Col: 4}

	g.StoreMoves(origin, []core.MoveOption{{Row: 4, Col: 4}})
	if _, ok := g.CachedMoves(origin); !ok {
		t.Fatal("cache miss after store")
	}

	if _, err := g.ApplyMove(origin, core.Square{Row: 4, Col: 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, ok := g.CachedMoves(origin); ok {
		t.Fatal("cache not invalidated by move")
	}
}

func TestClocksStartFull(t *testing.T) {
	g := newTestGame()
	white, black := g.Times()
	if white != InitialClockSeconds || black != InitialClockSeconds {
		t.Fatalf("expected full clocks, got white=%d black=%d", white, black)
	}
}

func TestConcurrentCacheAndMoves(t *testing.T) {
	g := newTestGame()
	origin := core.Square{Row: 6, Col: 4}
	moves := []core.MoveOption{{Row: 4, Col: 4}, {Row: 5, Col: 4}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			g.StoreMoves(origin, moves)
		}()
		go func() {
			defer wg.Done()
			g.CachedMoves(origin)
		}()
		go func() {
			defer wg.Done()
			g.History()
			g.Times()
			g.CurrentEncoding()
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := g.ApplyMove(origin, core.Square{Row: 4, Col: 4}); err != nil {
			t.Errorf("move: %v", err)
		}
	}()
	wg.Wait()

	if g.MoveCount() != 1 {
		t.Fatalf("expected 1 move, got %d", g.MoveCount())
	}
}

func TestPausedClockNotCharged(t *testing.T) {
	g := newTestGame()
	g.SetPaused(true)

	if _, err := g.ApplyMove(core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	white, black := g.Times()
	if white != InitialClockSeconds || black != InitialClockSeconds {
		t.Fatalf("paused clocks changed: white=%d black=%d", white, black)
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		from, to core.Square
		want     string
	}{
		{core.Square{Row: 6, Col: 4}, core.Square{Row: 4, Col: 4}, "e2 -> e4"},
		{core.Square{Row: 0, Col: 0}, core.Square{Row: 7, Col: 7}, "a8 -> h1"},
		{core.Square{Row: 1, Col: 3}, core.Square{Row: 3, Col: 3}, "d7 -> d5"},
	}
	for _, tt := range tests {
		if got := notation(tt.from, tt.to); got != tt.want {
			t.Errorf("notation(%v, %v) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
