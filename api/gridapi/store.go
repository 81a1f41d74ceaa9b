package gridapi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNoSession indicates an unknown or deleted session id.
	ErrNoSession = errors.New("gridapi: no such grid session")
	// ErrTooManySessions indicates the store is at capacity.
	ErrTooManySessions = errors.New("gridapi: too many grid sessions")
	// ErrGridTooLarge indicates a grid exceeding the configured dimensions.
	ErrGridTooLarge = errors.New("gridapi: grid exceeds size limit")
)

// StoreConfig bounds what a Store accepts.
type StoreConfig struct {
	MaxGrids int // Maximum number of live sessions
	MaxRows  int // Largest accepted grid height
	MaxCols  int // Largest accepted grid width
}

// session owns one grid. A grid is not safe for concurrent use, so every
// access goes through mu.
type session struct {
	mu sync.Mutex
	g  *grid.Grid
}

// Store keeps grid sessions in memory, keyed by uuid.
type Store struct {
	cfg      StoreConfig
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewStore creates an empty Store.
func NewStore(cfg StoreConfig) *Store {
	return &Store{
		cfg:      cfg,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Add registers g under a fresh id.
func (s *Store) Add(g *grid.Grid) (uuid.UUID, error) {
	if err := s.Fits(g.Rows(), g.Cols()); err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.cfg.MaxGrids {
		return uuid.Nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, s.cfg.MaxGrids)
	}
	id := uuid.New()
	s.sessions[id] = &session{g: g}

	return id, nil
}

// Do runs fn on the session's grid while holding the session lock.
// A non-nil grid returned by fn replaces the stored one.
func (s *Store) Do(id uuid.UUID, fn func(g *grid.Grid) (*grid.Grid, error)) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	next, err := fn(sess.g)
	if err != nil {
		return err
	}
	if next != nil {
		sess.g = next
	}

	return nil
}

// Delete drops a session.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	delete(s.sessions, id)

	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Fits checks rows×cols against the configured dimensions. Callers check
// before building a grid so oversized requests never allocate.
func (s *Store) Fits(rows, cols int) error {
	if rows > s.cfg.MaxRows || cols > s.cfg.MaxCols {
		return fmt.Errorf("%w: %dx%d, limit %dx%d",
			ErrGridTooLarge, rows, cols, s.cfg.MaxRows, s.cfg.MaxCols)
	}
	return nil
}
