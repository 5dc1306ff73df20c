package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the daily clock session.
// now is supplied by the caller so the session date is decided in one place.
type AttendanceService interface {
	// ClockIn opens today's session for the employee
	ClockIn(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// ClockOut completes today's session for the employee
	ClockOut(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// GetTodayStatus reports where today's session is in NotStarted -> Working -> Completed
	GetTodayStatus(ctx context.Context, employeeID string, now time.Time) (TodayStatusResponse, error)

	// GetMyAttendance retrieves raw attendance records of one employee, newest first
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter, now time.Time) ([]AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
