package timesheet

import (
	"context"

	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/domain/leave"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

// Facts is everything the engine needs to reconcile one employee over a window.
type Facts struct {
	Records  []attendance.Attendance
	Leaves   []leave.LeaveRequest
	Holidays []holiday.Holiday
}

// CalendarFacts loads Facts from the attendance, leave and holiday repositories.
type CalendarFacts struct {
	attendances attendance.AttendanceRepository
	leaves      leave.LeaveRequestRepository
	holidays    holiday.HolidayRepository
}

func NewCalendarFacts(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
) *CalendarFacts {
	return &CalendarFacts{
		attendances: attendanceRepo,
		leaves:      leaveRepo,
		holidays:    holidayRepo,
	}
}

// Load runs the three reads in parallel. If any of them fails the others are
// cancelled and no partial Facts are returned.
func (f *CalendarFacts) Load(ctx context.Context, employeeID string, window calendar.Range) (Facts, error) {
	var facts Facts

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := f.attendances.FindByEmployeeAndRange(gctx, employeeID, window.Start, window.End)
		if err != nil {
			return database.Unavailable("failed to load attendance records", err)
		}
		facts.Records = records
		return nil
	})

	g.Go(func() error {
		leaves, err := f.leaves.FindApprovedByEmployeeAndRange(gctx, employeeID, window.Start, window.End)
		if err != nil {
			return database.Unavailable("failed to load approved leaves", err)
		}
		facts.Leaves = leaves
		return nil
	})

	g.Go(func() error {
		holidays, err := f.holidays.FindByRange(gctx, window.Start, window.End)
		if err != nil {
			return database.Unavailable("failed to load holidays", err)
		}
		facts.Holidays = holidays
		return nil
	})

	if err := g.Wait(); err != nil {
		return Facts{}, err
	}

	return facts, nil
}
