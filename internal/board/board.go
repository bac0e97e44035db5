// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strings"

	"checkora/internal/core"
)

const (
	// StartingPosition is the standard initial setup in the 64-character
	// encoding: row 0 is rank 8, '.' marks an empty square.
	StartingPosition = "rnbqkbnr" + "pppppppp" +
		"........" + "........" + "........" + "........" +
		"PPPPPPPP" + "RNBQKBNR"

	// EncodingLength is the required length of a board encoding.
	EncodingLength = 64
)

// Board is an 8x8 grid of occupant codes. It is a value type: each query
// gets its own copy and nothing mutates a board that validation is
// reading.
type Board [8][8]byte

// Load builds a board from a 64-character encoding. Character at flat
// index i lands on cell (i/8, i%8). Individual characters are not
// validated here; unknown letters surface later as an unknown piece kind.
func Load(encoding string) (Board, error) {
	var b Board
	if len(encoding) != EncodingLength {
		return b, fmt.Errorf("board encoding must be %d characters, got %d", EncodingLength, len(encoding))
	}
	for i := 0; i < EncodingLength; i++ {
		b[i/8][i%8] = encoding[i]
	}
	return b, nil
}

// Starting returns the standard initial position.
func Starting() Board {
	b, _ := Load(StartingPosition)
	return b
}

// At returns the occupant code of a square.
func (b Board) At(sq core.Square) byte {
	return b[sq.Row][sq.Col]
}

// Encode flattens the board back into its 64-character form.
func (b Board) Encode() string {
	var sb strings.Builder
	sb.Grow(EncodingLength)
	for r := 0; r < 8; r++ {
		sb.Write(b[r][:])
	}
	return sb.String()
}

// Apply returns a copy of the board with the occupant of from moved onto
// to. It performs no legality checking; callers consult the oracle first.
func (b Board) Apply(from, to core.Square) Board {
	b[to.Row][to.Col] = b[from.Row][from.Col]
	b[from.Row][from.Col] = core.Empty
	return b
}

// ToASCII creates an ASCII representation of the board
func (b Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			sb.WriteString(fmt.Sprintf("%c ", b[r][f]))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
