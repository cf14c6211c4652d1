// Package core defines the shift ledger domain: sectors, time slots,
// recurrence modes, shift records and the monthly billing configuration.
//
// This file is the shift catalog: the fixed slot→hours table and the sector
// display order used for grouping in reports.
package core

import "time"

// slotHours maps each schedulable slot to its fixed duration. Hours are
// integral by construction; there is no rounding anywhere in the ledger.
var slotHours = map[TimeSlot]int{
	SlotDay:       12,
	SlotNight:     12,
	SlotMorning:   6,
	SlotAfternoon: 6,
}

// sectorOrder is the domain priority order used for report grouping. It is
// deliberately not alphabetical: daily-rate work is listed first, the
// surgical center last.
var sectorOrder = []Sector{SectorDiarismo, SectorAmbulatorio, SectorCentro}

// slotOrder is the order slots are offered in the form.
var slotOrder = []TimeSlot{SlotDay, SlotNight, SlotMorning, SlotAfternoon}

var monthNamesPT = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// SlotHours returns the fixed hour count for a slot, or ErrUnknownSlot.
func SlotHours(slot TimeSlot) (int, error) {
	h, ok := slotHours[slot]
	if !ok {
		return 0, ErrUnknownSlot
	}
	return h, nil
}

// Sectors returns the fixed sector set in display order.
func Sectors() []Sector {
	return append([]Sector(nil), sectorOrder...)
}

// Slots returns the fixed slot set in form order.
func Slots() []TimeSlot {
	return append([]TimeSlot(nil), slotOrder...)
}

// ValidSector reports whether s is one of the fixed sectors.
func ValidSector(s Sector) bool {
	for _, sec := range sectorOrder {
		if sec == s {
			return true
		}
	}
	return false
}

// SectorRank returns the position of s in the display order. Unknown sectors
// rank last so a malformed record can never displace valid ones.
func SectorRank(s Sector) int {
	for i, sec := range sectorOrder {
		if sec == s {
			return i
		}
	}
	return len(sectorOrder)
}

// MonthNamePT returns the Portuguese month name used in report headers.
func MonthNamePT(m time.Month) string {
	return monthNamesPT[m]
}
