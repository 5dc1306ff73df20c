package timesheet

import (
	"context"
	"time"

	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
)

// TimesheetService backs every view built on reconciled day statuses.
// now is supplied by the caller; the service never reads the clock.
type TimesheetService interface {
	// GetMyTimesheet builds the authenticated employee's timesheet
	GetMyTimesheet(ctx context.Context, employeeID string, filter TimesheetFilter, now time.Time) (TimesheetResponse, error)

	// GetEmployeeTimesheet builds any employee's timesheet (admin)
	GetEmployeeTimesheet(ctx context.Context, employeeID string, filter TimesheetFilter, now time.Time) (TimesheetResponse, error)

	// GetCalendar builds the month grid for the authenticated employee
	GetCalendar(ctx context.Context, employeeID string, filter TimesheetFilter, now time.Time) (CalendarResponse, error)

	// Reconcile classifies every date of window for one employee
	Reconcile(ctx context.Context, employeeID string, window calendar.Range, today time.Time) ([]DayStatus, Summary, error)
}
