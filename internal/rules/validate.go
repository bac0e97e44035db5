// FILE: internal/rules/validate.go
package rules

import (
	"checkora/internal/board"
	"checkora/internal/core"
)

// Reason identifies why a move was rejected. The String forms are the
// wire-protocol reason texts and must stay stable.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoPiece
	ReasonNotYourTurn
	ReasonSameSquare
	ReasonOwnCapture
	ReasonUnknownPiece
	ReasonIllegalMove
)

func (r Reason) String() string {
	switch r {
	case ReasonNoPiece:
		return "No piece on source square"
	case ReasonNotYourTurn:
		return "Not your turn"
	case ReasonSameSquare:
		return "Must move to a different square"
	case ReasonOwnCapture:
		return "Cannot capture your own piece"
	case ReasonUnknownPiece:
		return "Unknown piece type"
	case ReasonIllegalMove:
		return "Illegal move for this piece"
	default:
		return ""
	}
}

// Verdict is the outcome of validating a single move.
type Verdict struct {
	Legal  bool
	Reason Reason
}

func legal() Verdict           { return Verdict{Legal: true} }
func illegal(r Reason) Verdict { return Verdict{Reason: r} }

// Validate judges whether moving the occupant of from to to is legal for
// turn. Preconditions run in a fixed order and the first failure wins:
// empty origin, wrong owner, no-op move, self-capture, unknown piece, and
// finally the piece-specific geometry rule. The ordering is part of the
// protocol contract: a move that is both out of turn and geometrically
// illegal reports "Not your turn".
//
// King safety, castling, en passant, and promotion are intentionally
// outside this oracle's scope.
func Validate(b board.Board, turn core.Color, from, to core.Square) Verdict {
	piece := b.At(from)

	if core.IsEmptySquare(piece) {
		return illegal(ReasonNoPiece)
	}
	if core.ColorOf(piece) != turn {
		return illegal(ReasonNotYourTurn)
	}
	if from == to {
		return illegal(ReasonSameSquare)
	}

	target := b.At(to)
	if !core.IsEmptySquare(target) && core.ColorOf(target) == turn {
		return illegal(ReasonOwnCapture)
	}

	var ok bool
	switch core.KindOf(piece) {
	case core.KindPawn:
		ok = validPawn(b, turn, from, to)
	case core.KindRook:
		ok = validRook(b, from, to)
	case core.KindKnight:
		ok = validKnight(from, to)
	case core.KindBishop:
		ok = validBishop(b, from, to)
	case core.KindQueen:
		ok = validQueen(b, from, to)
	case core.KindKing:
		ok = validKing(from, to)
	default:
		return illegal(ReasonUnknownPiece)
	}

	if !ok {
		return illegal(ReasonIllegalMove)
	}
	return legal()
}
