// FILE: internal/server/processor/processor.go

package processor

import (
	"context"
	"fmt"
	"regexp"

	"checkora/internal/board"
	"checkora/internal/core"
	"checkora/internal/engine"
	"checkora/internal/server/game"
	"checkora/internal/server/service"
)

// boardPattern restricts custom positions to the occupant-code alphabet.
// The oracle itself tolerates unknown letters, but nothing the hosting
// layer creates should carry them.
var boardPattern = regexp.MustCompile(`^[.prnbqkPRNBQK]{64}$`)

// Processor executes game commands, coordinating between the service
// layer and the move-legality oracle.
type Processor struct {
	svc    *service.Service
	oracle *engine.Oracle
}

// New creates a processor backed by the given oracle client
func New(svc *service.Service, oracle *engine.Oracle) *Processor {
	return &Processor{
		svc:    svc,
		oracle: oracle,
	}
}

func (p *Processor) Execute(ctx context.Context, cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(ctx, cmd)
	case CmdValidMoves:
		return p.handleValidMoves(ctx, cmd)
	case CmdUndoMove:
		return p.handleUndoMove(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// handleCreateGame starts a new game, optionally from a custom position
func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	initial := board.StartingPosition
	if args.Board != "" {
		if !boardPattern.MatchString(args.Board) {
			return p.errorResponse("invalid board encoding", core.ErrInvalidBoard)
		}
		initial = args.Board
	}

	gameID := p.svc.GenerateGameID()

	// White moves first, also from custom positions
	if err := p.svc.CreateGame(gameID, initial, core.ColorWhite, cmd.UserID); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to create game: %v", err), core.ErrInternalError)
	}

	g, err := p.svc.GetGame(gameID)
	if err != nil {
		return p.errorResponse("game creation failed", core.ErrInternalError)
	}

	return ProcessorResponse{
		Success: true,
		Data:    p.buildGameResponse(gameID, g),
	}
}

// handleGetGame retrieves game state
func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
		Data:    p.buildGameResponse(cmd.GameID, g),
	}
}

// handleMakeMove validates a move with the oracle and applies it
func (p *Processor) handleMakeMove(ctx context.Context, cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	if g.State() != core.StateOngoing {
		return p.errorResponse(fmt.Sprintf("game is over: %s", g.State()), core.ErrGameOver)
	}

	from := core.Square{Row: *args.FromRow, Col: *args.FromCol}
	to := core.Square{Row: *args.ToRow, Col: *args.ToCol}

	legal, reason, err := p.oracle.ValidateMove(ctx, g.CurrentEncoding(), g.Turn(), from, to)
	if err != nil {
		return p.errorResponse(fmt.Sprintf("oracle query failed: %v", err), core.ErrEngineFailure)
	}
	if !legal {
		return ProcessorResponse{
			Success: false,
			Error: &core.ErrorResponse{
				Error:   "illegal move",
				Code:    core.ErrInvalidMove,
				Details: reason,
			},
		}
	}

	if _, err := p.svc.ApplyMove(cmd.GameID, from, to); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to apply move: %v", err), core.ErrInternalError)
	}

	g, _ = p.svc.GetGame(cmd.GameID)
	return ProcessorResponse{
		Success: true,
		Data:    p.buildGameResponse(cmd.GameID, g),
	}
}

// handleValidMoves enumerates legal destinations for one origin square,
// caching the oracle's answer until the next applied move
func (p *Processor) handleValidMoves(ctx context.Context, cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(ValidMovesArgs)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	sq := core.Square{Row: args.Row, Col: args.Col}
	if !sq.InBounds() {
		return p.errorResponse("square out of range", core.ErrInvalidRequest)
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	if moves, ok := g.CachedMoves(sq); ok {
		return movesResponse(moves)
	}

	moves, err := p.oracle.LegalMoves(ctx, g.CurrentEncoding(), g.Turn(), sq)
	if err != nil {
		return p.errorResponse(fmt.Sprintf("oracle query failed: %v", err), core.ErrEngineFailure)
	}
	g.StoreMoves(sq, moves)

	return movesResponse(moves)
}

// handleUndoMove reverts game state
func (p *Processor) handleUndoMove(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	args := core.UndoRequest{Count: 1}
	if cmd.Args != nil {
		if req, ok := cmd.Args.(core.UndoRequest); ok && req.Count > 0 {
			args = req
		}
	}

	if err := p.svc.UndoMoves(cmd.GameID, args.Count); err != nil {
		return p.errorResponse(err.Error(), core.ErrInvalidRequest)
	}

	g, _ = p.svc.GetGame(cmd.GameID)
	return ProcessorResponse{
		Success: true,
		Data:    p.buildGameResponse(cmd.GameID, g),
	}
}

// handleDeleteGame removes a game
func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
	}
}

// handleGetBoard returns board visualization
func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	b, err := board.Load(g.CurrentEncoding())
	if err != nil {
		return p.errorResponse("corrupt game position", core.ErrInvalidBoard)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Board: g.CurrentEncoding(),
			ASCII: b.ToASCII(),
		},
	}
}

// buildGameResponse constructs standard game response
func (p *Processor) buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	white, black := g.Times()

	return core.GameResponse{
		GameID:      gameID,
		Board:       g.CurrentEncoding(),
		Turn:        g.Turn().String(),
		State:       g.State().String(),
		MoveHistory: g.History(),
		Captured:    g.Captured(),
		WhiteTime:   white,
		BlackTime:   black,
		LastMove:    g.LastMove(),
		OwnerID:     g.OwnerID(),
	}
}

func movesResponse(moves []core.MoveOption) ProcessorResponse {
	if moves == nil {
		moves = []core.MoveOption{}
	}
	return ProcessorResponse{
		Success: true,
		Data:    core.ValidMovesResponse{ValidMoves: moves},
	}
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}
