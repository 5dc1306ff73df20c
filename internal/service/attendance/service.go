package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
}

// timePtrToString safely converts a *time.Time to a string in loc.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format(time.RFC3339)
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	date := calendar.DateOf(now, a.loc)

	// Races are settled by the unique (employee_id, date) constraint in Create.
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, database.Unavailable("failed to get today's attendance", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	clockIn := now.UTC()
	data := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clockIn,
		TotalHours: decimal.Zero,
		Status:     attendance.StatusPresent,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, database.Unavailable("failed to create attendance record", err)
	}

	slog.Info("employee clocked in", "employee_id", employeeID, "date", date.Format(calendar.DateLayout))

	return a.mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	date := calendar.DateOf(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, database.Unavailable("failed to get today's attendance", err)
	}

	switch attendance.StateOf(existing) {
	case attendance.StateNotStarted:
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	case attendance.StateCompleted:
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if existing.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	clockOut := now.UTC()
	totalHours, skewed := attendance.WorkedHours(*existing.ClockIn, clockOut)
	if skewed {
		slog.Warn("clock-out precedes clock-in, total hours clamped to zero",
			"employee_id", employeeID,
			"clock_in", existing.ClockIn.Format(time.RFC3339),
			"clock_out", clockOut.Format(time.RFC3339),
		)
	}

	updated, err := a.AttendanceRepository.CompleteSession(ctx, employeeID, date, clockOut, totalHours, skewed)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAlreadyClockedOut):
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
		case errors.Is(err, attendance.ErrAttendanceNotFound):
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, database.Unavailable("failed to complete attendance session", err)
	}

	slog.Info("employee clocked out",
		"employee_id", employeeID,
		"date", date.Format(calendar.DateLayout),
		"total_hours", updated.TotalHours.StringFixed(2),
	)

	return a.mapAttendanceToResponse(updated), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, employeeID string, now time.Time) (attendance.TodayStatusResponse, error) {
	date := calendar.DateOf(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TodayStatusResponse{}, database.Unavailable("failed to get today's attendance", err)
	}

	state := attendance.StateOf(existing)
	response := attendance.TodayStatusResponse{
		Date:          date.Format(calendar.DateLayout),
		State:         string(state),
		HasClockedIn:  state != attendance.StateNotStarted,
		HasClockedOut: state == attendance.StateCompleted,
		CanClockIn:    state == attendance.StateNotStarted,
		CanClockOut:   state == attendance.StateWorking,
	}

	switch state {
	case attendance.StateNotStarted:
		response.Message = "You have not clocked in today"
	case attendance.StateWorking:
		response.Message = "You are currently clocked in"
	case attendance.StateCompleted:
		response.Message = "You have completed today's attendance"
	}

	if existing != nil {
		mapped := a.mapAttendanceToResponse(*existing)
		response.Attendance = &mapped
	}

	return response, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter, now time.Time) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	window := calendar.MonthOf(calendar.DateOf(now, a.loc))
	if filter.StartDate != nil && *filter.StartDate != "" {
		start, _ := time.Parse(calendar.DateLayout, *filter.StartDate)
		end, _ := time.Parse(calendar.DateLayout, *filter.EndDate)
		window = calendar.NewRange(start, end)
	}
	if !window.Valid() {
		return nil, attendance.ErrInvalidDateRange
	}

	attendances, err := a.AttendanceRepository.FindByEmployeeAndRange(ctx, employeeID, window.Start, window.End)
	if err != nil {
		return nil, database.Unavailable("failed to get my attendance", err)
	}

	// Repository order is ascending; history is shown newest first.
	slices.Reverse(attendances)

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, a.mapAttendanceToResponse(att))
	}

	return responses, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.StartDate != nil && *filter.StartDate != "" && *filter.EndDate < *filter.StartDate {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidDateRange
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, database.Unavailable("failed to list attendances", err)
	}

	// Map to response
	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, a.mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

func (a *AttendanceServiceImpl) mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	employeeName := ""
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.Format(calendar.DateLayout),
		ClockInTime:  timePtrToString(att.ClockIn, a.loc),
		ClockOutTime: timePtrToString(att.ClockOut, a.loc),
		TotalHours:   att.TotalHours.InexactFloat64(),
		Status:       string(att.Status),
		State:        string(attendance.StateOf(&att)),
		ClockSkew:    att.ClockSkew,
		CreatedAt:    att.CreatedAt.In(a.loc).Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.In(a.loc).Format(time.RFC3339),
	}
}

// NewAttendanceService builds the clock session manager. Session dates are the
// calendar dates of the clock events as observed in loc.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
	}
}
