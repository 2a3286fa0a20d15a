// internal/session/session.go
//
// Per-caller guess-history storage. The solver is pure; this package owns
// the only state that survives between calls, and serializes mutation per
// session so the engine always sees a consistent read-only snapshot.
//
// Characteristics:
//   - Sessions keyed by crypto-random ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/roseu7/wordle-helper/internal/solver"
)

// ErrNotFound is returned when a session ID is unknown.
var ErrNotFound = errors.New("session: not found")

// Session is one caller's game in progress.
type Session struct {
	ID        string
	History   solver.History
	CreatedAt time.Time
}

// Store defines session persistence. Implementations may be backed by
// memory (this package), Redis, SQL, etc.
type Store interface {
	// Create starts an empty session and returns it.
	Create(ctx context.Context) (*Session, error)

	// Get returns a snapshot of the session. The returned history is a
	// copy; mutating it does not affect the store.
	Get(ctx context.Context, id string) (*Session, error)

	// AppendGuess records a confirmed guess at the end of the history and
	// returns the new history length, observed under the same write lock so
	// concurrent appends each see their own count.
	AppendGuess(ctx context.Context, id string, g solver.Guess) (int, error)

	// Reset clears the session's history for a fresh game.
	Reset(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Create(ctx context.Context) (*Session, error) {
	s := &Session{ID: newID(), CreatedAt: time.Now().UTC()}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return snapshot(s), nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(s), nil
}

func (m *memory) AppendGuess(ctx context.Context, id string, g solver.Guess) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return 0, ErrNotFound
	}
	s.History = append(s.History, g)
	return len(s.History), nil
}

func (m *memory) Reset(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.History = nil
	return nil
}

// snapshot copies the session so callers never share the stored history.
func snapshot(s *Session) *Session {
	out := &Session{ID: s.ID, CreatedAt: s.CreatedAt}
	if len(s.History) > 0 {
		out.History = make(solver.History, len(s.History))
		copy(out.History, s.History)
	}
	return out
}

// newID creates a 22-char URL-safe, crypto-random identifier (no padding).
func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
