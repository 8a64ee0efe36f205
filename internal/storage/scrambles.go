package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Scramble is a generated scramble and the cube it produced.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Moves      []types.Move
	Facelets   string
	Seed       *uint64
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID.
func (r *ScrambleRepository) Create(moves []types.Move, facelets string, seed *uint64) (string, error) {
	id := uuid.New().String()

	var seedVal *int64
	if seed != nil {
		v := int64(*seed)
		seedVal = &v
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, moves, facelets, seed)
		VALUES (?, ?, ?, ?, ?)
	`, id, formatTime(time.Now()), notation.Format(moves), facelets, seedVal)
	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, moves, facelets, seed
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID)

	s, err := scanScramble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scramble %s: %w", scrambleID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return s, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, moves, facelets, seed
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Delete deletes a scramble and its solutions.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScramble(row scanner) (*Scramble, error) {
	var s Scramble
	var createdAt, moves string
	var seed sql.NullInt64
	if err := row.Scan(&s.ScrambleID, &createdAt, &moves, &s.Facelets, &seed); err != nil {
		return nil, err
	}

	s.CreatedAt = parseTime(createdAt)
	parsed, err := notation.ParseSequence(moves)
	if err != nil {
		return nil, fmt.Errorf("stored moves: %w", err)
	}
	s.Moves = parsed
	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}
	return &s, nil
}
