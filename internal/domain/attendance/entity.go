package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is the single clock session of one employee on one calendar date.
// (EmployeeID, Date) is unique in storage.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	TotalHours decimal.Decimal
	Status     Status
	// ClockSkew is set when clock-out preceded clock-in and hours were clamped to zero.
	ClockSkew bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

// SessionState is derived from row presence and ClockOut; it is never stored.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateWorking    SessionState = "working"
	StateCompleted  SessionState = "completed"
)

// StateOf maps a possibly missing record onto the clock session state machine.
func StateOf(a *Attendance) SessionState {
	switch {
	case a == nil:
		return StateNotStarted
	case a.ClockOut == nil:
		return StateWorking
	default:
		return StateCompleted
	}
}

// WorkedHours returns clockOut-clockIn in hours rounded to 2 decimal places.
// A negative duration is clamped to zero and reported as skewed.
func WorkedHours(clockIn, clockOut time.Time) (hours decimal.Decimal, skewed bool) {
	d := clockOut.Sub(clockIn)
	if d < 0 {
		return decimal.Zero, true
	}
	return decimal.NewFromInt(int64(d)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(2), false
}
