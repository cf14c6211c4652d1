package core

import (
	"errors"
	"testing"
	"time"
)

func TestSlotHours(t *testing.T) {
	cases := []struct {
		slot  TimeSlot
		hours int
	}{
		{SlotDay, 12},
		{SlotNight, 12},
		{SlotMorning, 6},
		{SlotAfternoon, 6},
	}
	for _, tc := range cases {
		h, err := SlotHours(tc.slot)
		if err != nil || h != tc.hours {
			t.Fatalf("SlotHours(%q) = %d, %v; want %d", tc.slot, h, err, tc.hours)
		}
	}

	if _, err := SlotHours("22h - 06h"); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestSectorsDisplayOrder(t *testing.T) {
	want := []Sector{SectorDiarismo, SectorAmbulatorio, SectorCentro}
	got := Sectors()
	if len(got) != len(want) {
		t.Fatalf("Sectors() returned %d sectors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sectors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSectorRank(t *testing.T) {
	if SectorRank(SectorDiarismo) != 0 || SectorRank(SectorAmbulatorio) != 1 || SectorRank(SectorCentro) != 2 {
		t.Fatalf("unexpected sector ranks: %d %d %d",
			SectorRank(SectorDiarismo), SectorRank(SectorAmbulatorio), SectorRank(SectorCentro))
	}
	if SectorRank("UTI") != 3 {
		t.Fatalf("unknown sector should rank last, got %d", SectorRank("UTI"))
	}
}

func TestValidSector(t *testing.T) {
	for _, s := range Sectors() {
		if !ValidSector(s) {
			t.Fatalf("ValidSector(%q) = false", s)
		}
	}
	if ValidSector("Enfermaria") {
		t.Fatalf("ValidSector should reject unknown sector")
	}
}

func TestMonthNamePT(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Janeiro"},
		{time.March, "Março"},
		{time.July, "Julho"},
		{time.December, "Dezembro"},
	}
	for _, tc := range cases {
		if got := MonthNamePT(tc.month); got != tc.want {
			t.Fatalf("MonthNamePT(%v) = %q, want %q", tc.month, got, tc.want)
		}
	}
}
