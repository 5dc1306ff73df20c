package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts the record only if no row exists for (EmployeeID, Date).
	// A conflict is reported as ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when there is no record.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CompleteSession sets clock_out and total_hours only while clock_out is
	// still NULL. ErrAttendanceNotFound when no row exists,
	// ErrAlreadyClockedOut when the session was already completed.
	CompleteSession(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, totalHours decimal.Decimal, clockSkew bool) (Attendance, error)

	// FindByEmployeeAndRange returns records for dates in [start, end], ascending.
	FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// List retrieves attendance records for the admin listing, newest first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
