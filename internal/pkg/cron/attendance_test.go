package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/employee"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

type fakeTimesheetService struct {
	timesheet.TimesheetService
	mu        sync.Mutex
	present   map[string]bool
	failFor   string
	gotWindow []calendar.Range
	gotToday  []time.Time
}

func (f *fakeTimesheetService) Reconcile(ctx context.Context, employeeID string, window calendar.Range, today time.Time) ([]timesheet.DayStatus, timesheet.Summary, error) {
	f.mu.Lock()
	f.gotWindow = append(f.gotWindow, window)
	f.gotToday = append(f.gotToday, today)
	f.mu.Unlock()

	if employeeID == f.failFor {
		return nil, timesheet.Summary{}, errors.New("storage unavailable")
	}
	category := timesheet.CategoryAbsent
	if f.present[employeeID] {
		category = timesheet.CategoryPresent
	}
	return []timesheet.DayStatus{{Date: window.Start, Category: category}}, timesheet.Summary{}, nil
}

func activeEmployees(ids ...string) []employee.Employee {
	result := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		result = append(result, employee.Employee{ID: id, EmployeeCode: "EMP-" + id, EmploymentStatus: employee.EmploymentStatusActive})
	}
	return result
}

func TestAttendanceJobs_ReportAbsences(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: activeEmployees("a", "b", "c")}
	timesheets := &fakeTimesheetService{present: map[string]bool{"b": true}}
	// 2026-10-15 01:00 in UTC+7 is still the 14th in UTC
	wib := time.FixedZone("WIB", 7*60*60)
	now := func() time.Time { return time.Date(2026, time.October, 14, 18, 0, 0, 0, time.UTC) }
	jobs := NewAttendanceJobs(employees, timesheets, wib, now)

	report, err := jobs.ReportAbsences(context.Background())

	require.NoError(t, err)
	yesterday := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, yesterday, report.Date)
	assert.Equal(t, 3, report.Checked)
	assert.ElementsMatch(t, []string{"a", "c"}, report.AbsentIDs)
	for _, window := range timesheets.gotWindow {
		assert.Equal(t, calendar.NewRange(yesterday, yesterday), window)
	}
	for _, today := range timesheets.gotToday {
		assert.Equal(t, yesterday.AddDate(0, 0, 1), today)
	}
}

func TestAttendanceJobs_ReportAbsences_NoEmployees(t *testing.T) {
	jobs := NewAttendanceJobs(&fakeEmployeeRepo{}, &fakeTimesheetService{}, nil, nil)

	report, err := jobs.ReportAbsences(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Checked)
	assert.Empty(t, report.AbsentIDs)
}

func TestAttendanceJobs_ReportAbsences_ListFails(t *testing.T) {
	jobs := NewAttendanceJobs(&fakeEmployeeRepo{err: errors.New("connection refused")}, &fakeTimesheetService{}, nil, nil)

	_, err := jobs.ReportAbsences(context.Background())

	assert.ErrorContains(t, err, "connection refused")
}

func TestAttendanceJobs_ReportAbsences_ReconcileFails(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: activeEmployees("a", "b")}
	jobs := NewAttendanceJobs(employees, &fakeTimesheetService{failFor: "b"}, nil, nil)

	report, err := jobs.ReportAbsences(context.Background())

	assert.ErrorContains(t, err, "failed to reconcile employee b")
	assert.Empty(t, report.AbsentIDs)
}
