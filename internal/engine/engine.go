// FILE: internal/engine/engine.go

// Package engine is the client side of the oracle protocol. Each query
// spawns one short-lived oracle process (or, when no binary is
// configured, evaluates the request in-process), mirroring the
// one-invocation-per-query contract of the transport.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkora/internal/core"
	"checkora/internal/protocol"
)

// DefaultTimeout bounds a single oracle invocation.
const DefaultTimeout = 5 * time.Second

// Oracle answers move-legality queries.
type Oracle struct {
	path    string // oracle binary; empty runs the protocol in-process
	timeout time.Duration
}

// New creates an oracle client. An empty path selects the in-process
// evaluator, which is byte-for-byte equivalent to the binary.
func New(path string) *Oracle {
	return &Oracle{
		path:    path,
		timeout: DefaultTimeout,
	}
}

// Query sends one request line and returns the single response line.
func (o *Oracle) Query(ctx context.Context, request string) (string, error) {
	if o.path == "" {
		return protocol.Execute(request), nil
	}
	return o.execQuery(ctx, request)
}

// ValidateMove asks the oracle whether a single move is legal. The
// returned reason is empty for legal moves.
func (o *Oracle) ValidateMove(ctx context.Context, encoding string, turn core.Color, from, to core.Square) (bool, string, error) {
	req := fmt.Sprintf("VALIDATE %s %s %d %d %d %d",
		encoding, turn, from.Row, from.Col, to.Row, to.Col)

	resp, err := o.Query(ctx, req)
	if err != nil {
		return false, "", err
	}

	switch {
	case resp == protocol.RespValid:
		return true, "", nil
	case strings.HasPrefix(resp, protocol.RespInvalid+" "):
		return false, strings.TrimPrefix(resp, protocol.RespInvalid+" "), nil
	default:
		return false, "", fmt.Errorf("unexpected oracle response: %q", resp)
	}
}

// LegalMoves asks the oracle for every legal destination from one origin.
func (o *Oracle) LegalMoves(ctx context.Context, encoding string, turn core.Color, from core.Square) ([]core.MoveOption, error) {
	req := fmt.Sprintf("MOVES %s %s %d %d", encoding, turn, from.Row, from.Col)

	resp, err := o.Query(ctx, req)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(resp)
	if len(fields) == 0 || fields[0] != protocol.RespMoves {
		return nil, fmt.Errorf("unexpected oracle response: %q", resp)
	}
	fields = fields[1:]
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("malformed MOVES response: %q", resp)
	}

	var moves []core.MoveOption
	for i := 0; i < len(fields); i += 3 {
		row, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("malformed MOVES response: %q", resp)
		}
		col, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("malformed MOVES response: %q", resp)
		}
		cap, err := strconv.Atoi(fields[i+2])
		if err != nil {
			return nil, fmt.Errorf("malformed MOVES response: %q", resp)
		}
		moves = append(moves, core.MoveOption{
			Row:       row,
			Col:       col,
			IsCapture: cap != 0,
		})
	}
	return moves, nil
}
