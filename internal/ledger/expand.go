package ledger

import "plantoes/internal/core"

// ExpandDates materialises the dates a recurring shift covers within the
// anchor's calendar month. The anchor is always included; weekly and biweekly
// modes step forward 7 or 14 days and stop at the month boundary, so the
// result is finite and strictly increasing. An anchor on the last eligible
// day of its month yields just the anchor.
func ExpandDates(anchor core.Date, mode core.RecurrenceMode) ([]core.Date, error) {
	step, err := mode.StepDays()
	if err != nil {
		return nil, err
	}
	dates := []core.Date{anchor}
	if step == 0 {
		return dates, nil
	}
	for d := anchor.AddDate(0, 0, step); d.Month() == anchor.Month() && d.Year() == anchor.Year(); d = d.AddDate(0, 0, step) {
		dates = append(dates, core.Date{Time: d})
	}
	return dates, nil
}
