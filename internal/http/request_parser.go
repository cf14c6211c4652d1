// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data: shift form fields, canonical row indices and input sanitization.

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"plantoes/internal/core"
)

// ShiftParams holds the parsed fields of a shift creation form.
type ShiftParams struct {
	Date       core.Date
	Sector     core.Sector
	Slot       core.TimeSlot
	Recurrence core.RecurrenceMode
}

// ParseShiftParams extracts and validates the shift form fields. The date
// field uses the HTML date input format. An empty recurrence means a single
// shift.
func ParseShiftParams(form url.Values) (ShiftParams, error) {
	var params ShiftParams

	dateStr := strings.TrimSpace(form.Get("date"))
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return params, core.ErrInvalidDate
	}
	params.Date = core.Date{Time: t}

	params.Sector = core.Sector(sanitizeInput(form.Get("sector")))
	if !core.ValidSector(params.Sector) {
		return params, core.ErrInvalidSector
	}

	params.Slot = core.TimeSlot(sanitizeInput(form.Get("slot")))
	if _, err := core.SlotHours(params.Slot); err != nil {
		return params, err
	}

	mode := core.RecurrenceMode(sanitizeInput(form.Get("recurrence")))
	if mode == "" {
		mode = core.RecurrenceNone
	}
	if _, err := mode.StepDays(); err != nil {
		return params, err
	}
	params.Recurrence = mode

	return params, nil
}

// ParseIndex extracts a non-negative row index from a form field.
func ParseIndex(form url.Values, field string) (int, error) {
	v := strings.TrimSpace(form.Get(field))
	idx, err := strconv.Atoi(v)
	if err != nil || idx < 0 {
		return 0, core.ErrIndexOutOfRange
	}
	return idx, nil
}

// ParseBillingConfig extracts the billing configuration form fields. Empty
// rate and bonus fields are treated as zero.
func ParseBillingConfig(form url.Values) (core.BillingConfig, error) {
	var cfg core.BillingConfig

	cfg.PhysicianName = sanitizeInput(form.Get("physician_name"))
	cfg.MonthLabel = sanitizeInput(form.Get("month_label"))

	rate := strings.TrimSpace(form.Get("hourly_rate"))
	if rate == "" {
		rate = "0"
	}
	cents, err := core.ParseDecimalToCents(rate)
	if err != nil {
		return cfg, err
	}
	cfg.HourlyRate = core.Money{Cents: cents}

	bonus := strings.TrimSpace(form.Get("productivity_bonus"))
	if bonus == "" {
		bonus = "0"
	}
	cents, err = core.ParseDecimalToCents(bonus)
	if err != nil {
		return cfg, err
	}
	cfg.ProductivityBonus = core.Money{Cents: cents}

	return cfg, cfg.Validate()
}

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// RequireMethod checks if the request method matches the expected method(s).
// Returns an error response builder if the method doesn't match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// ParseFormOrFail parses the request form and returns an error response on failure.
// Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Formato de requisição inválido")
	}
	return nil
}
