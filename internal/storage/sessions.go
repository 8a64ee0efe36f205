package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Session is a live session fed by a smart cube.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DeviceName *string
	Solved     bool
}

// MoveRecord is one move of a session.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Turn      int
	Notation  string
}

// Move converts the record back to a move.
func (m MoveRecord) Move() types.Move {
	return types.Move{Face: types.Face(m.Face), Turn: types.Turn(m.Turn)}
}

// SessionRepository provides CRUD operations for sessions and their moves.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a session and returns its ID.
func (r *SessionRepository) Create(deviceName string) (string, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, device_name)
		VALUES (?, ?, ?)
	`, id, formatTime(time.Now()), nullString(deviceName))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	res, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?
		WHERE session_id = ?
	`, formatTime(time.Now()), solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt, device sql.NullString

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, device_name, solved
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &startedAt, &endedAt, &device, &s.Solved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.StartedAt = parseTime(startedAt)
	if endedAt.Valid {
		t := parseTime(endedAt.String)
		s.EndedAt = &t
	}
	if device.Valid {
		s.DeviceName = &device.String
	}
	return &s, nil
}

// AppendMove records the next move of a session.
func (r *SessionRepository) AppendMove(sessionID string, at time.Time, move types.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRow(`
			SELECT COALESCE(MAX(move_index), -1) + 1 FROM session_moves WHERE session_id = ?
		`, sessionID).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to get next move index: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO session_moves (session_id, move_index, ts_ms, face, turn, notation)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sessionID, next, at.UnixMilli(), string(move.Face), int(move.Turn), move.Notation())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", next, err)
		}
		return nil
	})
}

// Moves retrieves all moves of a session in order.
func (r *SessionRepository) Moves(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, turn, notation
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
