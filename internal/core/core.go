// FILE: internal/core/core.go
package core

// Color identifies which side a piece or turn belongs to.
type Color byte

const (
	ColorNone  Color = 0
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

// ParseColor maps the wire-protocol turn words to a Color. Anything that
// is not exactly "white" or "black" yields ColorNone, which can never
// match an occupied square's color.
func ParseColor(s string) Color {
	switch s {
	case "white":
		return ColorWhite
	case "black":
		return ColorBlack
	default:
		return ColorNone
	}
}

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Square is a board coordinate. Row 0 is the first character group of the
// 64-character encoding (rank 8 in standard orientation), column 0 the
// first character within a row.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}
