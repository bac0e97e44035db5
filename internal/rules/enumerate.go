// FILE: internal/rules/enumerate.go
package rules

import (
	"checkora/internal/board"
	"checkora/internal/core"
)

// Destination is one reachable square found by Enumerate.
type Destination struct {
	Square    core.Square
	IsCapture bool
}

// Enumerate scans all 64 squares in row-major order and returns every
// destination Validate would accept from the given origin. An empty or
// foreign origin yields an empty result. Captures are flagged when the
// destination was occupied. This is a full geometric scan, not a
// check-aware move generator.
func Enumerate(b board.Board, turn core.Color, from core.Square) []Destination {
	piece := b.At(from)
	if core.IsEmptySquare(piece) || core.ColorOf(piece) != turn {
		return nil
	}

	var dests []Destination
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			to := core.Square{Row: r, Col: c}
			if !Validate(b, turn, from, to).Legal {
				continue
			}
			dests = append(dests, Destination{
				Square:    to,
				IsCapture: !core.IsEmptySquare(b.At(to)),
			})
		}
	}
	return dests
}
