// FILE: internal/core/api.go
package core

// State tracks the lifecycle of a hosted game.
type State int

const (
	StateOngoing State = iota
	StatePaused
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// CreateGameRequest starts a new game, optionally from a custom position.
type CreateGameRequest struct {
	Board string `json:"board" validate:"omitempty,len=64"`
}

// MoveRequest submits a move by board coordinates. Pointer fields so a
// missing coordinate is rejected rather than defaulting to square (0,0).
type MoveRequest struct {
	FromRow *int `json:"from_row" validate:"required,min=0,max=7"`
	FromCol *int `json:"from_col" validate:"required,min=0,max=7"`
	ToRow   *int `json:"to_row" validate:"required,min=0,max=7"`
	ToCol   *int `json:"to_col" validate:"required,min=0,max=7"`
}

// UndoRequest reverts one or more half-moves.
type UndoRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=20"`
}

// MoveOption is a single legal destination reported by the oracle.
type MoveOption struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	IsCapture bool `json:"is_capture"`
}

// HistoryEntry records one applied move.
type HistoryEntry struct {
	Notation string `json:"notation"`
	Piece    string `json:"piece"`
	From     [2]int `json:"from"`
	To       [2]int `json:"to"`
	Captured string `json:"captured,omitempty"`
	Color    string `json:"color"`
}

// GameResponse is the full game state returned by the API.
type GameResponse struct {
	GameID      string              `json:"gameId"`
	Board       string              `json:"board"` // 64-character encoding
	Turn        string              `json:"turn"`
	State       string              `json:"state"`
	MoveHistory []HistoryEntry      `json:"move_history"`
	Captured    map[string][]string `json:"captured_pieces"`
	WhiteTime   int                 `json:"white_time"`
	BlackTime   int                 `json:"black_time"`
	LastMove    *HistoryEntry       `json:"last_move,omitempty"`
	OwnerID     string              `json:"ownerId,omitempty"`
}

// ValidMovesResponse lists every legal destination for one origin square.
type ValidMovesResponse struct {
	ValidMoves []MoveOption `json:"valid_moves"`
}

// BoardResponse carries the ASCII rendering of a position.
type BoardResponse struct {
	Board string `json:"board"`
	ASCII string `json:"ascii"`
}
