package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// Sectors a shift can be billed against.
	SectorDiarismo    Sector = "Diarismo"
	SectorAmbulatorio Sector = "Ambulatório"
	SectorCentro      Sector = "Centro"
)

const (
	// Time slots as they appear on the ward schedule.
	SlotDay       TimeSlot = "07h - 19h"
	SlotNight     TimeSlot = "19h - 07h"
	SlotMorning   TimeSlot = "07h - 13h"
	SlotAfternoon TimeSlot = "13h - 19h"
)

const (
	RecurrenceNone     RecurrenceMode = "none"
	RecurrenceWeekly   RecurrenceMode = "weekly"
	RecurrenceBiweekly RecurrenceMode = "biweekly"
)

type (
	Sector         string
	TimeSlot       string
	RecurrenceMode string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// ShiftRecord is one logged on-call shift. Hours are derived from the
	// slot at creation time and never edited afterwards.
	ShiftRecord struct {
		Date   Date
		Sector Sector
		Slot   TimeSlot
		Hours  int
	}

	// BillingConfig holds the per-month billing parameters entered once per
	// session. The hourly rate applies uniformly to every shift at report
	// time; the productivity bonus is added once to the final value.
	BillingConfig struct {
		PhysicianName     string
		HourlyRate        Money
		ProductivityBonus Money
		MonthLabel        string // optional, e.g. "Julho/2025"; inferred when empty
	}
)

var (
	ErrInvalidDate           = errors.New("invalid date")
	ErrUnknownSlot           = errors.New("unknown time slot")
	ErrInvalidSector         = errors.New("invalid sector")
	ErrInvalidRecurrenceMode = errors.New("invalid recurrence mode")
	ErrIndexOutOfRange       = errors.New("index out of range")
	ErrInvalidAmount         = errors.New("invalid amount")
)

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// FormatBR renders the date as dd/mm/yyyy, the convention used everywhere in
// the report and the shift list.
func (d Date) FormatBR() string {
	return d.Format("02/01/2006")
}

// StepDays returns the expansion step in days for the recurrence mode.
func (m RecurrenceMode) StepDays() (int, error) {
	switch m {
	case RecurrenceNone:
		return 0, nil
	case RecurrenceWeekly:
		return 7, nil
	case RecurrenceBiweekly:
		return 14, nil
	default:
		return 0, ErrInvalidRecurrenceMode
	}
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r ShiftRecord) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if !ValidSector(r.Sector) {
		return ErrInvalidSector
	}
	hours, err := SlotHours(r.Slot)
	if err != nil {
		return err
	}
	if r.Hours != hours {
		return errors.New("hours do not match slot")
	}
	return nil
}

func (c BillingConfig) Validate() error {
	if err := c.HourlyRate.Validate(); err != nil {
		return errors.New("invalid hourly rate: " + err.Error())
	}
	if err := c.ProductivityBonus.Validate(); err != nil {
		return errors.New("invalid productivity bonus: " + err.Error())
	}
	if len(c.PhysicianName) > 200 {
		return errors.New("physician name too long (max 200 characters)")
	}
	return nil
}

// DisplayName returns the physician name or the placeholder used when the
// configuration panel was left blank.
func (c BillingConfig) DisplayName() string {
	name := strings.TrimSpace(c.PhysicianName)
	if name == "" {
		return "Médico"
	}
	return name
}
