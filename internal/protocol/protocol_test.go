// FILE: internal/protocol/protocol_test.go
package protocol

import (
	"strings"
	"testing"

	"checkora/internal/board"
)

func TestExecuteValidate(t *testing.T) {
	start := board.StartingPosition

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "legal pawn double step",
			line: "VALIDATE " + start + " white 6 4 4 4",
			want: "VALID",
		},
		{
			name: "pawn triple step",
			line: "VALIDATE " + start + " white 6 4 3 4",
			want: "INVALID Illegal move for this piece",
		},
		{
			name: "empty origin",
			line: "VALIDATE " + start + " white 4 4 3 4",
			want: "INVALID No piece on source square",
		},
		{
			name: "opponent piece",
			line: "VALIDATE " + start + " white 1 4 2 4",
			want: "INVALID Not your turn",
		},
		{
			name: "same square",
			line: "VALIDATE " + start + " white 6 4 6 4",
			want: "INVALID Must move to a different square",
		},
		{
			name: "self capture",
			line: "VALIDATE " + start + " white 7 0 6 0",
			want: "INVALID Cannot capture your own piece",
		},
		{
			name: "unknown turn word",
			line: "VALIDATE " + start + " purple 6 4 5 4",
			want: "INVALID Not your turn",
		},
		{
			name: "short board",
			line: "VALIDATE " + start[:40] + " white 6 4 4 4",
			want: "INVALID Bad board data",
		},
		{
			name: "missing coordinate",
			line: "VALIDATE " + start + " white 6 4 4",
			want: "INVALID Bad board data",
		},
		{
			name: "non-integer coordinate",
			line: "VALIDATE " + start + " white a 4 4 4",
			want: "INVALID Bad board data",
		},
		{
			name: "out of range coordinate",
			line: "VALIDATE " + start + " white 8 4 4 4",
			want: "INVALID Bad board data",
		},
		{
			name: "trailing extra token",
			line: "VALIDATE " + start + " white 6 4 4 4 junk",
			want: "INVALID Bad board data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Execute(tt.line); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecuteMoves(t *testing.T) {
	start := board.StartingPosition

	t.Run("starting pawn", func(t *testing.T) {
		got := Execute("MOVES " + start + " white 6 4")
		// Row-major scan: the double step (4,4) is found before (5,4).
		want := "MOVES 4 4 0 5 4 0"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("empty origin", func(t *testing.T) {
		if got := Execute("MOVES " + start + " white 4 4"); got != "MOVES" {
			t.Fatalf("got %q, want bare MOVES", got)
		}
	})

	t.Run("opponent origin", func(t *testing.T) {
		if got := Execute("MOVES " + start + " white 1 4"); got != "MOVES" {
			t.Fatalf("got %q, want bare MOVES", got)
		}
	})

	t.Run("trailing extra token", func(t *testing.T) {
		if got := Execute("MOVES " + start + " white 6 4 junk"); got != "MOVES" {
			t.Fatalf("got %q, want bare MOVES", got)
		}
	})

	t.Run("capture flag", func(t *testing.T) {
		enc := []byte(strings.Repeat(".", 64))
		enc[4*8+4] = 'K'
		enc[4*8+5] = 'r'
		got := Execute("MOVES " + string(enc) + " white 4 4")

		fields := strings.Fields(got)
		if fields[0] != "MOVES" || (len(fields)-1)%3 != 0 {
			t.Fatalf("malformed response: %q", got)
		}
		if (len(fields)-1)/3 != 8 {
			t.Fatalf("expected 8 triples, got %d", (len(fields)-1)/3)
		}
		if !strings.Contains(got, " 4 5 1") {
			t.Fatalf("expected capture triple '4 5 1' in %q", got)
		}
	})

	t.Run("bad board length", func(t *testing.T) {
		if got := Execute("MOVES " + start[:10] + " white 6 4"); got != "MOVES" {
			t.Fatalf("got %q, want bare MOVES", got)
		}
	})

	t.Run("bad coordinate", func(t *testing.T) {
		if got := Execute("MOVES " + start + " white 9 4"); got != "MOVES" {
			t.Fatalf("got %q, want bare MOVES", got)
		}
	})
}

func TestExecuteLegacyEcho(t *testing.T) {
	if got := Execute("PING"); got != "VALID PING" {
		t.Fatalf("got %q, want %q", got, "VALID PING")
	}
	if got := Execute("  STATUS extra tokens ignored  "); got != "VALID STATUS" {
		t.Fatalf("got %q, want %q", got, "VALID STATUS")
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	if got := Execute(""); got != "" {
		t.Fatalf("empty input: got %q, want empty", got)
	}
	if got := Execute("   \t  "); got != "" {
		t.Fatalf("whitespace input: got %q, want empty", got)
	}
}
