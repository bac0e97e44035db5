// FILE: internal/protocol/protocol.go

// Package protocol implements the line-oriented oracle protocol: one
// whitespace-tokenized request in, exactly one response line out.
//
//	VALIDATE <board64> <turn> <fr> <fc> <tr> <tc>
//	  -> VALID | INVALID <reason>
//
//	MOVES <board64> <turn> <row> <col>
//	  -> MOVES [<row> <col> <is_capture> ...]
//
// Any other verb echoes back as "VALID <verb>" (legacy fallback).
package protocol

import (
	"strconv"
	"strings"

	"checkora/internal/board"
	"checkora/internal/core"
	"checkora/internal/rules"
)

// Response prefixes and the reason used for structurally malformed input.
const (
	RespValid      = "VALID"
	RespInvalid    = "INVALID"
	RespMoves      = "MOVES"
	BadBoardReason = "Bad board data"
)

// Execute processes one request line and returns the single response
// line. Every input yields a well-formed response; there is no error
// channel distinct from the INVALID / empty-MOVES texts. An entirely
// empty request produces an empty response (the caller emits nothing).
func Execute(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ""
	}

	switch tokens[0] {
	case "VALIDATE":
		return execValidate(tokens[1:])
	case "MOVES":
		return execMoves(tokens[1:])
	default:
		// Legacy fallback: echo the verb back as valid
		return RespValid + " " + tokens[0]
	}
}

func execValidate(args []string) string {
	// Exact arity: trailing extra tokens are rejected as malformed
	// rather than silently ignored.
	if len(args) != 6 || len(args[0]) != board.EncodingLength {
		return RespInvalid + " " + BadBoardReason
	}

	coords, ok := parseCoords(args[2:])
	if !ok {
		return RespInvalid + " " + BadBoardReason
	}

	b, err := board.Load(args[0])
	if err != nil {
		return RespInvalid + " " + BadBoardReason
	}

	turn := core.ParseColor(args[1])
	from := core.Square{Row: coords[0], Col: coords[1]}
	to := core.Square{Row: coords[2], Col: coords[3]}

	v := rules.Validate(b, turn, from, to)
	if v.Legal {
		return RespValid
	}
	return RespInvalid + " " + v.Reason.String()
}

func execMoves(args []string) string {
	// Exact arity, same strictness as VALIDATE
	if len(args) != 4 || len(args[0]) != board.EncodingLength {
		return RespMoves
	}

	coords, ok := parseCoords(args[2:])
	if !ok {
		return RespMoves
	}

	b, err := board.Load(args[0])
	if err != nil {
		return RespMoves
	}

	turn := core.ParseColor(args[1])
	from := core.Square{Row: coords[0], Col: coords[1]}

	var sb strings.Builder
	sb.WriteString(RespMoves)
	for _, d := range rules.Enumerate(b, turn, from) {
		cap := 0
		if d.IsCapture {
			cap = 1
		}
		sb.WriteString(" " + strconv.Itoa(d.Square.Row) +
			" " + strconv.Itoa(d.Square.Col) +
			" " + strconv.Itoa(cap))
	}
	return sb.String()
}

// parseCoords converts coordinate tokens, requiring each to be an integer
// on the board.
func parseCoords(tokens []string) ([]int, bool) {
	coords := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 7 {
			return nil, false
		}
		coords[i] = n
	}
	return coords, true
}
