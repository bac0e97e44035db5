// FILE: internal/server/storage/game.go
package storage

import (
	"database/sql"
	"fmt"
)

// RecordNewGame asynchronously records a new game
func (s *Store) RecordNewGame(record GameRecord) error {
	return s.enqueueWrite("game record", func(tx *sql.Tx) error {
		query := `INSERT INTO games (game_id, initial_encoding, owner_id, start_time_utc)
			VALUES (?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.InitialEncoding, record.OwnerID, record.StartTimeUTC,
		)
		return err
	})
}

// RecordMove asynchronously records an applied move
func (s *Store) RecordMove(record MoveRecord) error {
	return s.enqueueWrite("move record", func(tx *sql.Tx) error {
		query := `INSERT INTO moves (
			game_id, move_number, notation, piece, captured, board_after, player_color, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.MoveNumber, record.Notation, record.Piece,
			record.Captured, record.BoardAfter, record.PlayerColor, record.MoveTimeUTC,
		)
		return err
	})
}

// DeleteUndoneMoves asynchronously deletes moves beyond a move number
func (s *Store) DeleteUndoneMoves(gameID string, afterMoveNumber int) error {
	return s.enqueueWrite("undo operation", func(tx *sql.Tx) error {
		query := `DELETE FROM moves WHERE game_id = ? AND move_number > ?`
		_, err := tx.Exec(query, gameID, afterMoveNumber)
		return err
	})
}

// DeleteGameRecord asynchronously deletes a game and its moves
func (s *Store) DeleteGameRecord(gameID string) error {
	return s.enqueueWrite("game deletion", func(tx *sql.Tx) error {
		query := `DELETE FROM games WHERE game_id = ?`
		_, err := tx.Exec(query, gameID)
		return err
	})
}

// QueryGames retrieves games with optional filtering
func (s *Store) QueryGames(gameID, ownerID string) ([]GameRecord, error) {
	query := `SELECT game_id, initial_encoding, owner_id, start_time_utc
	FROM games WHERE 1=1`

	var args []interface{}

	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}

	if ownerID != "" && ownerID != "*" {
		query += " AND owner_id = ?"
		args = append(args, ownerID)
	}

	query += " ORDER BY start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.GameID, &g.InitialEncoding, &g.OwnerID, &g.StartTimeUTC); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}

// QueryMoves retrieves the recorded moves of a game in order
func (s *Store) QueryMoves(gameID string) ([]MoveRecord, error) {
	query := `SELECT move_id, game_id, move_number, notation, piece, captured,
		board_after, player_color, move_time_utc
	FROM moves WHERE game_id = ? ORDER BY move_number ASC`

	rows, err := s.db.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(
			&m.MoveID, &m.GameID, &m.MoveNumber, &m.Notation, &m.Piece,
			&m.Captured, &m.BoardAfter, &m.PlayerColor, &m.MoveTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return moves, nil
}
