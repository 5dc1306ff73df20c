package timesheet

import (
	"context"
	"errors"
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/domain/employee"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/domain/leave"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
)

type TimesheetServiceImpl struct {
	employee.EmployeeRepository
	facts  *CalendarFacts
	engine *Engine
	loc    *time.Location
}

func NewTimesheetService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	engine *Engine,
	loc *time.Location,
) timesheet.TimesheetService {
	if loc == nil {
		loc = time.UTC
	}
	return &TimesheetServiceImpl{
		EmployeeRepository: employeeRepo,
		facts:              NewCalendarFacts(attendanceRepo, leaveRepo, holidayRepo),
		engine:             engine,
		loc:                loc,
	}
}

// Reconcile implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Reconcile(ctx context.Context, employeeID string, window calendar.Range, today time.Time) ([]timesheet.DayStatus, timesheet.Summary, error) {
	if !window.Valid() {
		return nil, timesheet.Summary{}, timesheet.ErrInvalidDateRange
	}

	facts, err := s.facts.Load(ctx, employeeID, window)
	if err != nil {
		return nil, timesheet.Summary{}, err
	}

	days, err := s.engine.BuildTimesheet(employeeID, window.Start, window.End, facts.Records, facts.Leaves, facts.Holidays, today)
	if err != nil {
		return nil, timesheet.Summary{}, err
	}

	return days, Summarize(days), nil
}

// GetMyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMyTimesheet(ctx context.Context, employeeID string, filter timesheet.TimesheetFilter, now time.Time) (timesheet.TimesheetResponse, error) {
	today := calendar.DateOf(now, s.loc)

	window, err := resolveWindow(filter, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.buildResponse(ctx, employeeID, window, today)
}

// GetEmployeeTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetEmployeeTimesheet(ctx context.Context, employeeID string, filter timesheet.TimesheetFilter, now time.Time) (timesheet.TimesheetResponse, error) {
	today := calendar.DateOf(now, s.loc)

	window, err := resolveWindow(filter, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.TimesheetResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.TimesheetResponse{}, database.Unavailable("failed to get employee", err)
	}

	response, err := s.buildResponse(ctx, emp.ID, window, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	response.EmployeeName = emp.FullName

	return response, nil
}

// GetCalendar implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetCalendar(ctx context.Context, employeeID string, filter timesheet.TimesheetFilter, now time.Time) (timesheet.CalendarResponse, error) {
	today := calendar.DateOf(now, s.loc)

	window, err := resolveWindow(filter, today)
	if err != nil {
		return timesheet.CalendarResponse{}, err
	}

	response, err := s.buildResponse(ctx, employeeID, window, today)
	if err != nil {
		return timesheet.CalendarResponse{}, err
	}

	return timesheet.CalendarResponse{
		TimesheetResponse: response,
		LeadingBlanks:     int(window.Start.Weekday()),
	}, nil
}

func (s *TimesheetServiceImpl) buildResponse(ctx context.Context, employeeID string, window calendar.Range, today time.Time) (timesheet.TimesheetResponse, error) {
	days, summary, err := s.Reconcile(ctx, employeeID, window, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	responses := make([]timesheet.DayStatusResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, s.mapDayToResponse(day))
	}

	return timesheet.TimesheetResponse{
		EmployeeID: employeeID,
		StartDate:  window.Start.Format(calendar.DateLayout),
		EndDate:    window.End.Format(calendar.DateLayout),
		Days:       responses,
		Summary:    mapSummaryToResponse(summary),
	}, nil
}

// resolveWindow turns the filter into a date range, defaulting to the month of today.
func resolveWindow(filter timesheet.TimesheetFilter, today time.Time) (calendar.Range, error) {
	if err := filter.Validate(); err != nil {
		return calendar.Range{}, err
	}

	var window calendar.Range
	switch {
	case filter.Month != nil && *filter.Month != "":
		month, _ := time.Parse("2006-01", *filter.Month)
		window = calendar.Month(month.Year(), month.Month())
	case filter.StartDate != nil && *filter.StartDate != "":
		start, _ := time.Parse(calendar.DateLayout, *filter.StartDate)
		end, _ := time.Parse(calendar.DateLayout, *filter.EndDate)
		window = calendar.NewRange(start, end)
	default:
		window = calendar.MonthOf(today)
	}

	if !window.Valid() {
		return calendar.Range{}, timesheet.ErrInvalidDateRange
	}

	return window, nil
}

func (s *TimesheetServiceImpl) mapDayToResponse(day timesheet.DayStatus) timesheet.DayStatusResponse {
	response := timesheet.DayStatusResponse{
		Date:             day.Date.Format(calendar.DateLayout),
		Weekday:          day.Date.Weekday().String(),
		Category:         string(day.Category),
		Label:            day.Label,
		AttendanceStatus: day.AttendanceStatus,
	}

	if day.Category == timesheet.CategoryPresent {
		hours := day.TotalHours.InexactFloat64()
		response.TotalHours = &hours
		response.ClockInTime = s.formatTime(day.ClockIn)
		response.ClockOutTime = s.formatTime(day.ClockOut)
	}

	return response
}

func (s *TimesheetServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.loc).Format(time.RFC3339)
	return &formatted
}

func mapSummaryToResponse(summary timesheet.Summary) timesheet.SummaryResponse {
	return timesheet.SummaryResponse{
		PresentCount: summary.PresentCount,
		LeaveCount:   summary.LeaveCount,
		HolidayCount: summary.HolidayCount,
		AbsentCount:  summary.AbsentCount,
		WeekendCount: summary.WeekendCount,
		PendingCount: summary.PendingCount,
		TotalHours:   summary.TotalHours.InexactFloat64(),
	}
}
