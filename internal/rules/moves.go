// FILE: internal/rules/moves.go
package rules

import (
	"checkora/internal/board"
	"checkora/internal/core"
)

// Per-piece movement predicates. Each assumes the validator's
// preconditions already passed (occupied origin, correct owner,
// destination not self-occupied, origin != destination) and tests pure
// geometry plus, where the rule demands it, emptiness of target squares.

func validPawn(b board.Board, color core.Color, from, to core.Square) bool {
	dir := 1
	startRow := 1
	if color == core.ColorWhite {
		dir = -1
		startRow = 6
	}
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	// Forward one square
	if dc == 0 && dr == dir && core.IsEmptySquare(b.At(to)) {
		return true
	}

	// Forward two squares from the starting rank
	if dc == 0 && dr == 2*dir && from.Row == startRow {
		mid := core.Square{Row: from.Row + dir, Col: from.Col}
		if core.IsEmptySquare(b.At(mid)) && core.IsEmptySquare(b.At(to)) {
			return true
		}
	}

	// Diagonal capture only; a diagonal step onto an empty square is illegal
	if abs(dc) == 1 && dr == dir && !core.IsEmptySquare(b.At(to)) {
		return true
	}

	return false
}

func validRook(b board.Board, from, to core.Square) bool {
	return (from.Row == to.Row || from.Col == to.Col) && pathClear(b, from, to)
}

func validKnight(from, to core.Square) bool {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func validBishop(b board.Board, from, to core.Square) bool {
	return abs(to.Row-from.Row) == abs(to.Col-from.Col) && pathClear(b, from, to)
}

func validQueen(b board.Board, from, to core.Square) bool {
	return validRook(b, from, to) || validBishop(b, from, to)
}

func validKing(from, to core.Square) bool {
	return abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
}
