package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Solution records one solve request and its outcome.
type Solution struct {
	SolutionID string
	ScrambleID *string
	CreatedAt  time.Time
	Facelets   string
	Status     string
	Source     string
	Moves      []types.Move
	Error      *string
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores a solution and returns its ID. scrambleID may be empty for
// cubes that were not generated here.
func (r *SolutionRepository) Create(scrambleID, facelets, status, source string, moves []types.Move, errMsg string) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, scramble_id, created_at, facelets, status, source, moves, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, nullString(scrambleID), formatTime(time.Now()), facelets, status, source,
		notation.Format(moves), nullString(errMsg))
	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

// ListForScramble retrieves the solutions of a scramble, oldest first.
func (r *SolutionRepository) ListForScramble(scrambleID string) ([]Solution, error) {
	return r.list(`
		SELECT solution_id, scramble_id, created_at, facelets, status, source, moves, error
		FROM solutions
		WHERE scramble_id = ?
		ORDER BY created_at, rowid
	`, scrambleID)
}

// List retrieves recent solutions, newest first.
func (r *SolutionRepository) List(limit int) ([]Solution, error) {
	return r.list(`
		SELECT solution_id, scramble_id, created_at, facelets, status, source, moves, error
		FROM solutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
}

func (r *SolutionRepository) list(query string, args ...any) ([]Solution, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var out []Solution
	for rows.Next() {
		var s Solution
		var createdAt, moves string
		var scrambleID, errMsg sql.NullString
		err := rows.Scan(&s.SolutionID, &scrambleID, &createdAt, &s.Facelets,
			&s.Status, &s.Source, &moves, &errMsg)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}

		s.CreatedAt = parseTime(createdAt)
		if scrambleID.Valid {
			s.ScrambleID = &scrambleID.String
		}
		if errMsg.Valid {
			s.Error = &errMsg.String
		}
		if s.Moves, err = notation.ParseSequence(moves); err != nil {
			return nil, fmt.Errorf("solution %s: stored moves: %w", s.SolutionID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
