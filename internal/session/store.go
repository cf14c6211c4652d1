package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"plantoes/internal/core"
)

// DefaultTTL is how long an idle session survives between requests.
const DefaultTTL = 12 * time.Hour

// Store keeps live sessions keyed by ID and evicts the ones that have gone
// quiet for longer than the TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	defaults core.BillingConfig
	now      func() time.Time
}

// NewStore builds a store. New sessions start from defaults, typically the
// configured hourly rate with an empty physician name.
func NewStore(ttl time.Duration, defaults core.BillingConfig) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		defaults: defaults,
		now:      time.Now,
	}
}

// Create registers a fresh session with a random ID.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.defaults, st.now())
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for id, refreshing its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// SweepExpired drops sessions idle past the TTL and returns how many went.
func (st *Store) SweepExpired(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled. It is
// meant to run in its own goroutine alongside the HTTP server.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := st.SweepExpired(st.now()); removed > 0 {
				slog.InfoContext(ctx, "swept expired sessions",
					"removed", removed,
					"remaining", st.Len())
			}
		}
	}
}
