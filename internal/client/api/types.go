// FILE: internal/client/api/types.go
package api

import "time"

// ErrorResponse mirrors the server's error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse reports server liveness and storage state
type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage,omitempty"`
}

// CreateGameRequest starts a new game, optionally from a custom position
type CreateGameRequest struct {
	Board string `json:"board,omitempty"`
}

// MoveRequest submits a move by board coordinates
type MoveRequest struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

// UndoRequest reverts one or more half-moves
type UndoRequest struct {
	Count int `json:"count"`
}

// HistoryEntry records one applied move
type HistoryEntry struct {
	Notation string `json:"notation"`
	Piece    string `json:"piece"`
	From     [2]int `json:"from"`
	To       [2]int `json:"to"`
	Captured string `json:"captured,omitempty"`
	Color    string `json:"color"`
}

// GameResponse is the full game state returned by the API
type GameResponse struct {
	GameID      string              `json:"gameId"`
	Board       string              `json:"board"`
	Turn        string              `json:"turn"`
	State       string              `json:"state"`
	MoveHistory []HistoryEntry      `json:"move_history"`
	Captured    map[string][]string `json:"captured_pieces"`
	WhiteTime   int                 `json:"white_time"`
	BlackTime   int                 `json:"black_time"`
	LastMove    *HistoryEntry       `json:"last_move,omitempty"`
	OwnerID     string              `json:"ownerId,omitempty"`
}

// MoveOption is a single legal destination square
type MoveOption struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	IsCapture bool `json:"is_capture"`
}

// ValidMovesResponse lists legal destinations for one origin square
type ValidMovesResponse struct {
	ValidMoves []MoveOption `json:"valid_moves"`
}

// BoardResponse carries the ASCII rendering of a position
type BoardResponse struct {
	Board string `json:"board"`
	ASCII string `json:"ascii"`
}

// RegisterRequest defines the user registration payload
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginRequest defines the authentication payload
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse contains JWT token and user information
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse contains current user information
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
