// FILE: internal/board/board_test.go
package board

import (
	"strings"
	"testing"

	"checkora/internal/core"
)

func TestLoadRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 1, 63, 65, 128} {
		enc := strings.Repeat(".", n)
		if _, err := Load(enc); err == nil {
			t.Errorf("length %d: expected error", n)
		}
	}
}

func TestLoadEncodeRoundTrip(t *testing.T) {
	b, err := Load(StartingPosition)
	if err != nil {
		t.Fatalf("load starting position: %v", err)
	}
	if got := b.Encode(); got != StartingPosition {
		t.Fatalf("round trip mismatch:\n got  %s\n want %s", got, StartingPosition)
	}
}

func TestIndexMapping(t *testing.T) {
	// Flat index i lands on (i/8, i%8): the black queen at index 3 is
	// square (0,3), the white king at index 60 is (7,4).
	b := Starting()

	if got := b.At(core.Square{Row: 0, Col: 3}); got != 'q' {
		t.Errorf("expected black queen at (0,3), got %c", got)
	}
	if got := b.At(core.Square{Row: 7, Col: 4}); got != 'K' {
		t.Errorf("expected white king at (7,4), got %c", got)
	}
	if got := b.At(core.Square{Row: 4, Col: 4}); got != core.Empty {
		t.Errorf("expected empty square at (4,4), got %c", got)
	}
}

func TestApplyDoesNotMutateOriginal(t *testing.T) {
	b := Starting()
	from := core.Square{Row: 6, Col: 4}
	to := core.Square{Row: 4, Col: 4}

	moved := b.Apply(from, to)

	if b.At(from) != 'P' {
		t.Errorf("original board mutated: origin is %c", b.At(from))
	}
	if moved.At(from) != core.Empty {
		t.Errorf("expected empty origin after apply, got %c", moved.At(from))
	}
	if moved.At(to) != 'P' {
		t.Errorf("expected pawn at destination, got %c", moved.At(to))
	}
}

func TestApplyOverwritesCapture(t *testing.T) {
	enc := []byte(strings.Repeat(".", 64))
	enc[7*8+0] = 'R'
	enc[7*8+7] = 'r'
	b, err := Load(string(enc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	moved := b.Apply(core.Square{Row: 7, Col: 0}, core.Square{Row: 7, Col: 7})
	if got := moved.At(core.Square{Row: 7, Col: 7}); got != 'R' {
		t.Errorf("expected white rook after capture, got %c", got)
	}
}

func TestToASCII(t *testing.T) {
	got := Starting().ToASCII()
	lines := strings.Split(got, "\n")

	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[0] != "  a b c d e f g h" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "8 r n b q k b n r") {
		t.Errorf("unexpected rank 8 line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[8], "1 R N B Q K B N R") {
		t.Errorf("unexpected rank 1 line: %q", lines[8])
	}
	if lines[9] != "  a b c d e f g h" {
		t.Errorf("unexpected footer: %q", lines[9])
	}
}
