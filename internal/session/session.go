// Package session owns per-browser-session state: one shift ledger and one
// billing configuration per session, behind a TTL store. Sessions are fully
// isolated from one another; nothing here outlives the process.
package session

import (
	"sync"
	"time"

	"plantoes/internal/core"
	"plantoes/internal/ledger"
)

// Session is the unit of ownership. All ledger and config access goes
// through its methods, which serialise operations the way the original
// single-user flow did.
type Session struct {
	ID string

	mu        sync.Mutex
	ledger    *ledger.Ledger
	config    core.BillingConfig
	configRev uint64
	lastSeen  time.Time
}

func newSession(id string, defaults core.BillingConfig, now time.Time) *Session {
	return &Session{
		ID:       id,
		ledger:   ledger.New(),
		config:   defaults,
		lastSeen: now,
	}
}

// AddShift logs a shift, expanding the recurrence mode within the anchor's
// month. Returns the number of records created.
func (s *Session) AddShift(date core.Date, sector core.Sector, slot core.TimeSlot, mode core.RecurrenceMode) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AddRecurring(date, sector, slot, mode)
}

// DeleteShift removes the record at index in the canonical order most
// recently handed out by Shifts.
func (s *Session) DeleteShift(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.DeleteAt(index)
}

// ClearShifts empties the ledger and returns the number removed.
func (s *Session) ClearShifts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clear()
}

// Shifts returns the ledger in canonical order. Row indices into this slice
// are the only valid input for DeleteShift until the next mutation.
func (s *Session) Shifts() []core.ShiftRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Sorted()
}

// Snapshot returns the canonical records, the billing configuration and a
// revision in one consistent read. The revision advances on every ledger or
// config mutation, so it is a safe cache key for rendered reports.
func (s *Session) Snapshot() ([]core.ShiftRecord, core.BillingConfig, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Sorted(), s.config, s.ledger.Revision() + s.configRev
}

// Config returns the current billing configuration.
func (s *Session) Config() core.BillingConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// SetConfig replaces the billing configuration after validating it.
func (s *Session) SetConfig(cfg core.BillingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.configRev++
	return nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
