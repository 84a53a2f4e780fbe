package models

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window end must not be before its start")

// Window is a half-open time range [Start, End). Transactions are placed in a
// window by calendar date, read in Start's location.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window, rejecting an end before the start.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether the calendar day of date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && day.Before(w.End)
}

// IsEmpty reports whether no instant can fall inside the window.
func (w Window) IsEmpty() bool {
	return !w.End.After(w.Start)
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CurrentMonthWindow covers the first of now's month through the end of now's
// day, in now's location. Transaction dates carry no clock, so this is the
// same set of days as [first-of-month, now].
func CurrentMonthWindow(now time.Time) Window {
	today := StartOfDay(now)
	return Window{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, now.Location()),
		End:   today.AddDate(0, 0, 1),
	}
}

// MonthWindow covers one full calendar month.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PeriodWindow returns the weekly, monthly or yearly period containing asOf.
// Weeks start on Monday.
func PeriodWindow(period string, asOf time.Time) (Window, error) {
	today := StartOfDay(asOf)
	switch period {
	case BudgetPeriodWeekly:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case BudgetPeriodMonthly:
		return MonthWindow(today.Year(), today.Month(), today.Location()), nil
	case BudgetPeriodYearly:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Window{}, ErrInvalidBudgetPeriod
	}
}

// BudgetWindow is the budget's period containing asOf, clipped to the budget's
// own start and end dates. The result may be empty when asOf lies outside them.
func BudgetWindow(b *Budget, asOf time.Time) (Window, error) {
	w, err := PeriodWindow(b.Period, asOf)
	if err != nil {
		return Window{}, err
	}

	loc := w.Start.Location()
	if !b.StartDate.IsZero() {
		y, m, d := b.StartDate.Date()
		if start := time.Date(y, m, d, 0, 0, 0, 0, loc); start.After(w.Start) {
			w.Start = start
		}
	}
	if b.EndDate != nil {
		y, m, d := b.EndDate.Date()
		if end := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, 1); end.Before(w.End) {
			w.End = end
		}
	}
	if w.End.Before(w.Start) {
		w.End = w.Start
	}
	return w, nil
}
