// Package recorder manages live session recording.
package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/piececube/internal/storage"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

var (
	ErrRecording    = errors.New("recorder: session already in progress")
	ErrNotRecording = errors.New("recorder: no session in progress")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records the moves of one smart cube session into the history
// database. It is safe for concurrent use.
type Session struct {
	repo *storage.SessionRepository

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveCount int
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB) *Session {
	return &Session{
		repo:  storage.NewSessionRepository(db),
		state: StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveCount
}

// Start begins a new session for the named device.
func (s *Session) Start(deviceName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrRecording
	}

	id, err := s.repo.Create(deviceName)
	if err != nil {
		return "", err
	}

	s.sessionID = id
	s.startTime = time.Now()
	s.moveCount = 0
	s.state = StateRecording
	return id, nil
}

// Resume picks up an unfinished session, continuing its move count.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return ErrRecording
	}

	sess, err := s.repo.Get(sessionID)
	if err != nil {
		return err
	}
	if sess.EndedAt != nil {
		return fmt.Errorf("session %s already ended", sessionID)
	}

	moves, err := s.repo.Moves(sessionID)
	if err != nil {
		return err
	}

	s.sessionID = sessionID
	s.startTime = sess.StartedAt
	s.moveCount = len(moves)
	s.state = StateRecording
	return nil
}

// Record stores a move. Moves arriving while no session is recording are
// ignored.
func (s *Session) Record(at time.Time, move types.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}
	if err := s.repo.AppendMove(s.sessionID, at, move); err != nil {
		return err
	}
	s.moveCount++
	return nil
}

// End finishes the session and summarizes its moves.
func (s *Session) End(solved bool) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return Summary{}, ErrNotRecording
	}

	end := time.Now()
	if err := s.repo.End(s.sessionID, solved); err != nil {
		return Summary{}, err
	}
	s.state = StateEnded

	moves, err := s.repo.Moves(s.sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(s.startTime, end, moves), nil
}
