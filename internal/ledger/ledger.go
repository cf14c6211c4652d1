// Package ledger holds the in-memory shift ledger for one session: ordered
// shift records with add, recurring add, index deletion and the canonical
// sort used for both display and deletion indexing.
//
// The ledger itself is not safe for concurrent use; the owning session
// serialises access (sessions are isolated and every user action is a
// discrete operation against one session).
package ledger

import (
	"sort"

	"plantoes/internal/core"
)

type Ledger struct {
	records  []core.ShiftRecord
	revision uint64
}

func New() *Ledger {
	return &Ledger{}
}

// Add appends one shift with hours derived from the slot. The record keeps
// insertion order internally; callers read through Sorted.
func (l *Ledger) Add(date core.Date, sector core.Sector, slot core.TimeSlot) (core.ShiftRecord, error) {
	if err := date.Validate(); err != nil {
		return core.ShiftRecord{}, err
	}
	if !core.ValidSector(sector) {
		return core.ShiftRecord{}, core.ErrInvalidSector
	}
	hours, err := core.SlotHours(slot)
	if err != nil {
		return core.ShiftRecord{}, err
	}
	rec := core.ShiftRecord{Date: date, Sector: sector, Slot: slot, Hours: hours}
	l.records = append(l.records, rec)
	l.revision++
	return rec, nil
}

// AddRecurring expands the anchor per the recurrence mode and adds one record
// per date, all sharing sector, slot and hours. Returns the count added.
// Validation runs before any insert so a bad argument never leaves a partial
// batch behind.
func (l *Ledger) AddRecurring(anchor core.Date, sector core.Sector, slot core.TimeSlot, mode core.RecurrenceMode) (int, error) {
	dates, err := ExpandDates(anchor, mode)
	if err != nil {
		return 0, err
	}
	if !core.ValidSector(sector) {
		return 0, core.ErrInvalidSector
	}
	if _, err := core.SlotHours(slot); err != nil {
		return 0, err
	}
	for _, d := range dates {
		if _, err := l.Add(d, sector, slot); err != nil {
			return 0, err
		}
	}
	return len(dates), nil
}

// DeleteAt removes the record at position index in the canonical order.
// Indices are only valid against the most recently produced canonical order;
// callers must re-fetch Sorted after every mutation.
func (l *Ledger) DeleteAt(index int) error {
	if index < 0 || index >= len(l.records) {
		return core.ErrIndexOutOfRange
	}
	sorted := l.Sorted()
	target := sorted[index]
	for i, rec := range l.records {
		if rec == target {
			l.records = append(l.records[:i], l.records[i+1:]...)
			l.revision++
			return nil
		}
	}
	// Unreachable: Sorted is a permutation of records.
	return core.ErrIndexOutOfRange
}

// Clear empties the ledger unconditionally and returns the number of records
// removed.
func (l *Ledger) Clear() int {
	n := len(l.records)
	l.records = nil
	if n > 0 {
		l.revision++
	}
	return n
}

// Sorted returns a copy of the records in canonical order: date ascending,
// then sector display order, then slot lexical. This is the order shown on
// screen and the order deletion indices refer to.
func (l *Ledger) Sorted() []core.ShiftRecord {
	out := append([]core.ShiftRecord(nil), l.records...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date.Time)
		}
		ri, rj := core.SectorRank(out[i].Sector), core.SectorRank(out[j].Sector)
		if ri != rj {
			return ri < rj
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}

// All returns a copy of the records in insertion order.
func (l *Ledger) All() []core.ShiftRecord {
	return append([]core.ShiftRecord(nil), l.records...)
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// Revision counts mutations. The HTTP layer keys its rendered-report cache
// on it so any add, delete or clear invalidates cached output.
func (l *Ledger) Revision() uint64 {
	return l.revision
}
