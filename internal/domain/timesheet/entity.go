package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the single authoritative classification of one calendar date.
type Category string

const (
	CategoryHoliday Category = "holiday"
	CategoryWeekend Category = "weekend"
	CategoryLeave   Category = "leave"
	CategoryPresent Category = "present"
	CategoryAbsent  Category = "absent"
	CategoryPending Category = "pending"
)

const (
	LabelPresent = "Worked"
	LabelAbsent  = "Unexcused"
	LabelPending = "—"
)

// DayStatus is the reconciled status of one employee on one date.
// Clock fields are set only for CategoryPresent.
type DayStatus struct {
	Date     time.Time
	Category Category
	Label    string

	ClockIn          *time.Time
	ClockOut         *time.Time
	TotalHours       decimal.Decimal
	AttendanceStatus *string
}

// Summary aggregates a DayStatus sequence. TotalHours is rounded to 1 decimal place.
type Summary struct {
	PresentCount int
	LeaveCount   int
	HolidayCount int
	AbsentCount  int
	WeekendCount int
	PendingCount int
	TotalHours   decimal.Decimal
}
