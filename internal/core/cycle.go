package core

import "fmt"

// Timing classifies how favorable a purchase made on the reference date
// would be relative to a card's statement cycle. Paying shortly after the
// cycle closes maximizes the interest-free float before the resulting
// statement falls due; paying just before it closes minimizes it.
type Timing string

const (
	TimingGreat Timing = "great"
	TimingGood  Timing = "good"
	TimingPoor  Timing = "poor"
	TimingNA    Timing = "na"
)

// CycleStatus carries everything the views need to display cycle health.
// The widths and colors are fixed per classification and travel with the
// status so callers never recompute them.
type CycleStatus struct {
	Timing     Timing
	Label      string
	Color      string // severity color class for the indicator
	Width      int    // progress-bar width percent
	DaysPassed int    // days since the cycle closed, after wrap-around
}

var (
	cycleNA    = CycleStatus{Timing: TimingNA, Label: "N/A", Color: "bg-slate-200", Width: 0}
	cycleGreat = CycleStatus{Timing: TimingGreat, Label: "Great Timing", Color: "bg-emerald-500", Width: 15}
	cycleGood  = CycleStatus{Timing: TimingGood, Label: "Good Timing", Color: "bg-yellow-500", Width: 50}
	cyclePoor  = CycleStatus{Timing: TimingPoor, Label: "Cycle Ending Soon", Color: "bg-rose-500", Width: 90}
)

// MonthlyAnchor is a day-of-month marker (1-31) that recurs every billing
// period. It is deliberately not a calendar date: an anchor of 31 is valid
// in February and resolves to that month's last day.
type MonthlyAnchor struct {
	day int
}

// NewMonthlyAnchor validates the day and returns the anchor.
func NewMonthlyAnchor(day int) (MonthlyAnchor, error) {
	if day < 1 || day > 31 {
		return MonthlyAnchor{}, fmt.Errorf("%w: %d", ErrInvalidAnchor, day)
	}
	return MonthlyAnchor{day: day}, nil
}

// MustMonthlyAnchor is for fixtures and tests with known-valid days.
func MustMonthlyAnchor(day int) *MonthlyAnchor {
	a, err := NewMonthlyAnchor(day)
	if err != nil {
		panic(err)
	}
	return &a
}

// Day returns the stored day-of-month marker.
func (a MonthlyAnchor) Day() int {
	return a.day
}

// clampedDay resolves the anchor against a concrete month, pulling day 31
// back to day 28/29/30 in shorter months instead of rolling into the next
// month.
func (a MonthlyAnchor) clampedDay(year, month int) int {
	last := daysInMonth(year, month)
	if a.day > last {
		return last
	}
	return a.day
}

// DaysSince returns how many days of the current cycle have elapsed at the
// reference date. Negative raw differences wrap forward by the actual
// number of days in the reference month, modeling the monthly recurrence.
// The result is always in [0, daysInMonth-1].
func (a MonthlyAnchor) DaysSince(ref Date) int {
	days := ref.DaysInMonth()
	passed := ref.Day() - a.clampedDay(ref.Year(), ref.Month())
	if passed < 0 {
		passed += days
	}
	return passed
}

// DateIn resolves the anchor to a concrete date in the given month,
// clamped to the month's length. Used to populate date-picker controls.
func (a MonthlyAnchor) DateIn(year, month int) Date {
	return NewDate(year, month, a.clampedDay(year, month))
}

// String renders the anchor for wallet detail views.
func (a MonthlyAnchor) String() string {
	return fmt.Sprintf("day %d", a.day)
}

// ClassifyCycle answers how well-timed a purchase on the reference date
// would be for a card with the given statement-cycle anchor. A nil anchor
// (debit and cash instruments) yields the neutral N/A status with zero
// progress width and no favorability ranking.
//
// Thresholds are inclusive: daysPassed <= 10 is great (just after cycle
// close, maximum float), <= 20 is good, anything later is poor (the
// purchase would post to a statement due almost immediately).
func ClassifyCycle(anchor *MonthlyAnchor, ref Date) CycleStatus {
	if anchor == nil {
		return cycleNA
	}
	passed := anchor.DaysSince(ref)
	var status CycleStatus
	switch {
	case passed <= 10:
		status = cycleGreat
	case passed <= 20:
		status = cycleGood
	default:
		status = cyclePoor
	}
	status.DaysPassed = passed
	return status
}
