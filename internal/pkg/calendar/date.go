// Package calendar works with calendar dates: days without a time-of-day.
//
// A date is represented as a time.Time at midnight UTC. Callers convert
// instants to dates with DateOf, using the location the business operates in.
package calendar

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// ErrInvalidDateRange is returned when a range ends before it starts.
var ErrInvalidDateRange = errors.New("invalid date range: end date is before start date")

// DateOf returns the calendar day of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return Day(t)
}

// Day drops the time-of-day of t without changing its zone first.
// Use it for values that already denote a date, such as scanned DATE columns.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) Range {
	return Range{Start: Day(start), End: Day(end)}
}

// Month returns the range covering every day of the given month.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// MonthOf returns the month containing date.
func MonthOf(date time.Time) Range {
	return Month(date.Year(), date.Month())
}

func (r Range) Valid() bool {
	return !r.End.Before(r.Start)
}

// Days returns the number of dates in r, or 0 when r is inverted.
func (r Range) Days() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r Range) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Dates lists every date in r in ascending order.
func (r Range) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r Range) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
