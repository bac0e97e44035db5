// FILE: internal/rules/path.go
package rules

import (
	"checkora/internal/board"
	"checkora/internal/core"
)

// pathClear reports whether every square strictly between from and to is
// empty. The endpoints must already lie on a shared row, column, or
// diagonal, and must differ; callers guarantee both.
func pathClear(b board.Board, from, to core.Square) bool {
	dr := step(from.Row, to.Row)
	dc := step(from.Col, to.Col)

	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if !core.IsEmptySquare(b[r][c]) {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

// step returns the unit increment from a toward b on one axis.
func step(a, b int) int {
	switch {
	case b > a:
		return 1
	case b < a:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
