// FILE: internal/rules/validate_test.go
package rules

import (
	"strings"
	"testing"

	"checkora/internal/board"
	"checkora/internal/core"
)

// buildBoard places occupant codes on an empty board. Keys are flat
// indexes into the 64-character encoding.
func buildBoard(t *testing.T, pieces map[int]byte) board.Board {
	t.Helper()
	enc := []byte(strings.Repeat(".", 64))
	for idx, p := range pieces {
		enc[idx] = p
	}
	b, err := board.Load(string(enc))
	if err != nil {
		t.Fatalf("load board: %v", err)
	}
	return b
}

func sq(row, col int) core.Square {
	return core.Square{Row: row, Col: col}
}

func TestValidatePreconditionOrder(t *testing.T) {
	starting := board.Starting()

	tests := []struct {
		name   string
		board  board.Board
		turn   core.Color
		from   core.Square
		to     core.Square
		reason Reason
	}{
		{
			name:   "empty origin",
			board:  starting,
			turn:   core.ColorWhite,
			from:   sq(4, 4),
			to:     sq(3, 4),
			reason: ReasonNoPiece,
		},
		{
			name:   "opponent piece",
			board:  starting,
			turn:   core.ColorWhite,
			from:   sq(1, 4),
			to:     sq(2, 4),
			reason: ReasonNotYourTurn,
		},
		{
			// Wrong owner outranks bad geometry: the rook move is also
			// illegal but ownership is checked first.
			name:   "wrong owner beats geometry",
			board:  starting,
			turn:   core.ColorBlack,
			from:   sq(7, 0),
			to:     sq(4, 3),
			reason: ReasonNotYourTurn,
		},
		{
			name:   "unknown turn word never owns pieces",
			board:  starting,
			turn:   core.ColorNone,
			from:   sq(6, 4),
			to:     sq(5, 4),
			reason: ReasonNotYourTurn,
		},
		{
			name:   "same square",
			board:  starting,
			turn:   core.ColorWhite,
			from:   sq(6, 4),
			to:     sq(6, 4),
			reason: ReasonSameSquare,
		},
		{
			name:   "self capture",
			board:  starting,
			turn:   core.ColorWhite,
			from:   sq(7, 0),
			to:     sq(6, 0),
			reason: ReasonOwnCapture,
		},
		{
			name:   "unknown piece letter",
			board:  buildBoard(t, map[int]byte{36: 'X'}),
			turn:   core.ColorWhite,
			from:   sq(4, 4),
			to:     sq(3, 4),
			reason: ReasonUnknownPiece,
		},
		{
			name:   "illegal geometry",
			board:  starting,
			turn:   core.ColorWhite,
			from:   sq(6, 4),
			to:     sq(3, 4),
			reason: ReasonIllegalMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.board, tt.turn, tt.from, tt.to)
			if v.Legal {
				t.Fatalf("expected illegal move, got legal")
			}
			if v.Reason != tt.reason {
				t.Fatalf("expected reason %q, got %q", tt.reason, v.Reason)
			}
		})
	}
}

func TestValidatePawnMoves(t *testing.T) {
	starting := board.Starting()

	tests := []struct {
		name  string
		board board.Board
		turn  core.Color
		from  core.Square
		to    core.Square
		legal bool
	}{
		{"white single step", starting, core.ColorWhite, sq(6, 4), sq(5, 4), true},
		{"white double step from start", starting, core.ColorWhite, sq(6, 4), sq(4, 4), true},
		{"black single step", starting, core.ColorBlack, sq(1, 3), sq(2, 3), true},
		{"black double step from start", starting, core.ColorBlack, sq(1, 3), sq(3, 3), true},
		{"white backward", starting, core.ColorWhite, sq(6, 4), sq(7, 4), false},
		{"white sideways", starting, core.ColorWhite, sq(6, 4), sq(6, 5), false},
		{
			"double step off starting rank",
			buildBoard(t, map[int]byte{5*8 + 4: 'P'}),
			core.ColorWhite, sq(5, 4), sq(3, 4), false,
		},
		{
			"double step blocked midway",
			buildBoard(t, map[int]byte{6*8 + 4: 'P', 5*8 + 4: 'n'}),
			core.ColorWhite, sq(6, 4), sq(4, 4), false,
		},
		{
			"forward capture blocked",
			buildBoard(t, map[int]byte{6*8 + 4: 'P', 5*8 + 4: 'n'}),
			core.ColorWhite, sq(6, 4), sq(5, 4), false,
		},
		{
			"diagonal capture",
			buildBoard(t, map[int]byte{6*8 + 4: 'P', 5*8 + 3: 'n'}),
			core.ColorWhite, sq(6, 4), sq(5, 3), true,
		},
		{
			"diagonal onto empty square",
			buildBoard(t, map[int]byte{6*8 + 4: 'P'}),
			core.ColorWhite, sq(6, 4), sq(5, 3), false,
		},
		{
			"black diagonal capture",
			buildBoard(t, map[int]byte{1*8 + 2: 'p', 2*8 + 3: 'B'}),
			core.ColorBlack, sq(1, 2), sq(2, 3), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.board, tt.turn, tt.from, tt.to)
			if v.Legal != tt.legal {
				t.Fatalf("expected legal=%v, got legal=%v (reason %q)", tt.legal, v.Legal, v.Reason)
			}
		})
	}
}

func TestValidateSlidersAndObstruction(t *testing.T) {
	tests := []struct {
		name  string
		board board.Board
		turn  core.Color
		from  core.Square
		to    core.Square
		legal bool
	}{
		{
			"rook along clear rank",
			buildBoard(t, map[int]byte{7*8 + 0: 'R'}),
			core.ColorWhite, sq(7, 0), sq(7, 7), true,
		},
		{
			"rook blocked on rank",
			buildBoard(t, map[int]byte{7*8 + 0: 'R', 7*8 + 3: 'N'}),
			core.ColorWhite, sq(7, 0), sq(7, 7), false,
		},
		{
			"rook diagonal",
			buildBoard(t, map[int]byte{7*8 + 0: 'R'}),
			core.ColorWhite, sq(7, 0), sq(5, 2), false,
		},
		{
			"rook capture at end of path",
			buildBoard(t, map[int]byte{7*8 + 0: 'R', 7*8 + 7: 'r'}),
			core.ColorWhite, sq(7, 0), sq(7, 7), true,
		},
		{
			"bishop along clear diagonal",
			buildBoard(t, map[int]byte{4*8 + 4: 'B'}),
			core.ColorWhite, sq(4, 4), sq(1, 1), true,
		},
		{
			"bishop blocked",
			buildBoard(t, map[int]byte{4*8 + 4: 'B', 3*8 + 3: 'p'}),
			core.ColorWhite, sq(4, 4), sq(1, 1), false,
		},
		{
			"bishop straight line",
			buildBoard(t, map[int]byte{4*8 + 4: 'B'}),
			core.ColorWhite, sq(4, 4), sq(4, 7), false,
		},
		{
			"queen as rook",
			buildBoard(t, map[int]byte{4*8 + 4: 'Q'}),
			core.ColorWhite, sq(4, 4), sq(4, 0), true,
		},
		{
			"queen as bishop",
			buildBoard(t, map[int]byte{4*8 + 4: 'Q'}),
			core.ColorWhite, sq(4, 4), sq(7, 7), true,
		},
		{
			"queen knight-shape",
			buildBoard(t, map[int]byte{4*8 + 4: 'Q'}),
			core.ColorWhite, sq(4, 4), sq(2, 3), false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.board, tt.turn, tt.from, tt.to)
			if v.Legal != tt.legal {
				t.Fatalf("expected legal=%v, got legal=%v (reason %q)", tt.legal, v.Legal, v.Reason)
			}
		})
	}
}

func TestValidateKnightAndKing(t *testing.T) {
	b := buildBoard(t, map[int]byte{4*8 + 4: 'N', 0: 'K'})

	knightMoves := []struct {
		to    core.Square
		legal bool
	}{
		{sq(2, 3), true},
		{sq(2, 5), true},
		{sq(3, 2), true},
		{sq(5, 6), true},
		{sq(6, 4), false},
		{sq(4, 6), false},
		{sq(3, 3), false},
	}
	for _, m := range knightMoves {
		v := Validate(b, core.ColorWhite, sq(4, 4), m.to)
		if v.Legal != m.legal {
			t.Errorf("knight (4,4)->(%d,%d): expected legal=%v, got %v", m.to.Row, m.to.Col, m.legal, v.Legal)
		}
	}

	// Knight jumps over blockers
	crowded := buildBoard(t, map[int]byte{
		4*8 + 4: 'N',
		3*8 + 4: 'p', 3*8 + 3: 'p', 3*8 + 5: 'p',
		4*8 + 3: 'p', 4*8 + 5: 'p',
		5*8 + 3: 'p', 5*8 + 4: 'p', 5*8 + 5: 'p',
	})
	if v := Validate(crowded, core.ColorWhite, sq(4, 4), sq(2, 3)); !v.Legal {
		t.Errorf("knight should jump over blockers, got reason %q", v.Reason)
	}

	kb := buildBoard(t, map[int]byte{4*8 + 4: 'K'})
	kingMoves := []struct {
		to    core.Square
		legal bool
	}{
		{sq(3, 4), true},
		{sq(5, 5), true},
		{sq(4, 3), true},
		{sq(2, 4), false},
		{sq(4, 6), false},
	}
	for _, m := range kingMoves {
		v := Validate(kb, core.ColorWhite, sq(4, 4), m.to)
		if v.Legal != m.legal {
			t.Errorf("king (4,4)->(%d,%d): expected legal=%v, got %v", m.to.Row, m.to.Col, m.legal, v.Legal)
		}
	}
}

func TestReasonStrings(t *testing.T) {
	want := map[Reason]string{
		ReasonNoPiece:      "No piece on source square",
		ReasonNotYourTurn:  "Not your turn",
		ReasonSameSquare:   "Must move to a different square",
		ReasonOwnCapture:   "Cannot capture your own piece",
		ReasonUnknownPiece: "Unknown piece type",
		ReasonIllegalMove:  "Illegal move for this piece",
	}
	for r, text := range want {
		if r.String() != text {
			t.Errorf("reason %d: expected %q, got %q", r, text, r.String())
		}
	}
}
