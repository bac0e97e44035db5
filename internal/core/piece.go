// FILE: internal/core/piece.go
package core

// Empty is the occupant code of a vacant square.
const Empty byte = '.'

// Kind is the piece type encoded by an occupant code, case-folded.
// Unrecognized letters map to KindUnknown rather than a default piece.
type Kind int

const (
	KindUnknown Kind = iota
	KindPawn
	KindRook
	KindKnight
	KindBishop
	KindQueen
	KindKing
)

func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "pawn"
	case KindRook:
		return "rook"
	case KindKnight:
		return "knight"
	case KindBishop:
		return "bishop"
	case KindQueen:
		return "queen"
	case KindKing:
		return "king"
	default:
		return "unknown"
	}
}

func IsWhitePiece(c byte) bool { return c >= 'A' && c <= 'Z' }
func IsBlackPiece(c byte) bool { return c >= 'a' && c <= 'z' }
func IsEmptySquare(c byte) bool {
	return c == Empty
}

// ColorOf returns the owning color of an occupant code, or ColorNone for
// an empty square.
func ColorOf(c byte) Color {
	switch {
	case IsWhitePiece(c):
		return ColorWhite
	case IsBlackPiece(c):
		return ColorBlack
	default:
		return ColorNone
	}
}

// KindOf case-folds the occupant code and maps it to a piece kind.
func KindOf(c byte) Kind {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch c {
	case 'p':
		return KindPawn
	case 'r':
		return KindRook
	case 'n':
		return KindKnight
	case 'b':
		return KindBishop
	case 'q':
		return KindQueen
	case 'k':
		return KindKing
	default:
		return KindUnknown
	}
}
