package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/domain/leave"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID  = "0192a4f0-0000-7000-8000-000000000001"
	otherEmployeeID = "0192a4f0-0000-7000-8000-000000000002"
)

// October 2026 starts on a Thursday; the 4th and 11th are Sundays.
func oct(day int) time.Time {
	return time.Date(2026, time.October, day, 0, 0, 0, 0, time.UTC)
}

func record(employeeID string, day int, hours string) attendance.Attendance {
	clockIn := oct(day).Add(9 * time.Hour)
	total := decimal.RequireFromString(hours)
	clockOut := clockIn.Add(time.Duration(total.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()))
	return attendance.Attendance{
		ID:         "rec-" + oct(day).Format("0102"),
		EmployeeID: employeeID,
		Date:       oct(day),
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
		TotalHours: total,
		Status:     attendance.StatusPresent,
	}
}

func approvedLeave(employeeID string, leaveType leave.LeaveType, from, to int) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "leave",
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  oct(from),
		EndDate:    oct(to),
		Status:     leave.LeaveRequestStatusApproved,
	}
}

func TestEngine_BuildTimesheet_OneStatusPerDate(t *testing.T) {
	engine := NewEngine(time.Sunday)

	days, err := engine.BuildTimesheet(testEmployeeID, oct(1), oct(31), nil, nil, nil, oct(15))

	require.NoError(t, err)
	require.Len(t, days, 31)
	for i, day := range days {
		assert.Equal(t, oct(i+1), day.Date)
	}
}

func TestEngine_BuildTimesheet_SingleDay(t *testing.T) {
	engine := NewEngine(time.Sunday)

	days, err := engine.BuildTimesheet(testEmployeeID, oct(5), oct(5), nil, nil, nil, oct(15))

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, timesheet.CategoryAbsent, days[0].Category)
}

func TestEngine_BuildTimesheet_InvalidRange(t *testing.T) {
	engine := NewEngine(time.Sunday)

	days, err := engine.BuildTimesheet(testEmployeeID, oct(10), oct(9), nil, nil, nil, oct(15))

	assert.ErrorIs(t, err, timesheet.ErrInvalidDateRange)
	assert.Nil(t, days)
}

func TestEngine_BuildTimesheet_Precedence(t *testing.T) {
	engine := NewEngine(time.Sunday)

	holidays := []holiday.Holiday{
		{ID: "h1", Date: oct(2), Name: "Gandhi Jayanti", Category: holiday.CategoryNational},
		{ID: "h2", Date: oct(11), Name: "Founders Day", Category: holiday.CategoryOptional},
	}
	leaves := []leave.LeaveRequest{
		approvedLeave(testEmployeeID, leave.LeaveTypeSick, 5, 6),
	}
	records := []attendance.Attendance{
		record(testEmployeeID, 2, "8"), // holiday wins
		record(testEmployeeID, 4, "3"), // rest day wins
		record(testEmployeeID, 5, "8"), // leave wins
		record(testEmployeeID, 7, "7.5"),
	}

	days, err := engine.BuildTimesheet(testEmployeeID, oct(1), oct(12), records, leaves, holidays, oct(15))
	require.NoError(t, err)

	byDay := func(day int) timesheet.DayStatus { return days[day-1] }

	assert.Equal(t, timesheet.CategoryHoliday, byDay(2).Category)
	assert.Equal(t, "Gandhi Jayanti", byDay(2).Label)
	assert.Nil(t, byDay(2).ClockIn)

	assert.Equal(t, timesheet.CategoryWeekend, byDay(4).Category)
	assert.Equal(t, "Sunday", byDay(4).Label)

	assert.Equal(t, timesheet.CategoryLeave, byDay(5).Category)
	assert.Equal(t, "Sick Leave", byDay(5).Label)
	assert.Equal(t, timesheet.CategoryLeave, byDay(6).Category)

	assert.Equal(t, timesheet.CategoryPresent, byDay(7).Category)
	assert.Equal(t, timesheet.LabelPresent, byDay(7).Label)
	assert.True(t, decimal.RequireFromString("7.5").Equal(byDay(7).TotalHours))
	require.NotNil(t, byDay(7).AttendanceStatus)
	assert.Equal(t, "present", *byDay(7).AttendanceStatus)

	// A holiday on the rest day is still a holiday
	assert.Equal(t, timesheet.CategoryHoliday, byDay(11).Category)
	assert.Equal(t, "Founders Day", byDay(11).Label)

	assert.Equal(t, timesheet.CategoryAbsent, byDay(8).Category)
	assert.Equal(t, timesheet.LabelAbsent, byDay(8).Label)
}

func TestEngine_BuildTimesheet_AbsentBeforeTodayPendingFromToday(t *testing.T) {
	engine := NewEngine(time.Sunday)

	days, err := engine.BuildTimesheet(testEmployeeID, oct(13), oct(17), nil, nil, nil, oct(15))
	require.NoError(t, err)

	categories := make([]timesheet.Category, 0, len(days))
	for _, day := range days {
		categories = append(categories, day.Category)
	}

	assert.Equal(t, []timesheet.Category{
		timesheet.CategoryAbsent,
		timesheet.CategoryAbsent,
		timesheet.CategoryPending,
		timesheet.CategoryPending,
		timesheet.CategoryPending,
	}, categories)
	assert.Equal(t, timesheet.LabelPending, days[2].Label)
}

func TestEngine_BuildTimesheet_TodayIsDateOnly(t *testing.T) {
	engine := NewEngine(time.Sunday)

	// Late in the day, today is still pending rather than absent.
	days, err := engine.BuildTimesheet(testEmployeeID, oct(15), oct(15), nil, nil, nil, oct(15).Add(23*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, timesheet.CategoryPending, days[0].Category)
}

func TestEngine_BuildTimesheet_PresentTodayIsPresent(t *testing.T) {
	engine := NewEngine(time.Sunday)
	records := []attendance.Attendance{record(testEmployeeID, 15, "0")}
	records[0].ClockOut = nil

	days, err := engine.BuildTimesheet(testEmployeeID, oct(15), oct(16), records, nil, nil, oct(15))

	require.NoError(t, err)
	assert.Equal(t, timesheet.CategoryPresent, days[0].Category)
	assert.Nil(t, days[0].ClockOut)
	assert.Equal(t, timesheet.CategoryPending, days[1].Category)
}

func TestEngine_BuildTimesheet_IgnoresOtherEmployeesAndUnapprovedLeave(t *testing.T) {
	engine := NewEngine(time.Sunday)

	pending := approvedLeave(testEmployeeID, leave.LeaveTypeCasual, 5, 5)
	pending.Status = leave.LeaveRequestStatusPending
	rejected := approvedLeave(testEmployeeID, leave.LeaveTypePaid, 6, 6)
	rejected.Status = leave.LeaveRequestStatusRejected

	leaves := []leave.LeaveRequest{
		pending,
		rejected,
		approvedLeave(otherEmployeeID, leave.LeaveTypeSick, 7, 7),
	}
	records := []attendance.Attendance{record(otherEmployeeID, 8, "8")}

	days, err := engine.BuildTimesheet(testEmployeeID, oct(5), oct(8), records, leaves, nil, oct(15))
	require.NoError(t, err)

	for _, day := range days {
		assert.Equal(t, timesheet.CategoryAbsent, day.Category, day.Date.Format("2006-01-02"))
	}
}

func TestEngine_BuildTimesheet_LeaveOverlappingWindowEdges(t *testing.T) {
	engine := NewEngine(time.Sunday)
	leaves := []leave.LeaveRequest{{
		EmployeeID: testEmployeeID,
		LeaveType:  leave.LeaveTypePaid,
		StartDate:  time.Date(2026, time.September, 28, 0, 0, 0, 0, time.UTC),
		EndDate:    oct(2),
		Status:     leave.LeaveRequestStatusApproved,
	}}

	days, err := engine.BuildTimesheet(testEmployeeID, oct(1), oct(3), nil, leaves, nil, oct(15))
	require.NoError(t, err)

	assert.Equal(t, timesheet.CategoryLeave, days[0].Category)
	assert.Equal(t, "Paid Leave", days[0].Label)
	assert.Equal(t, timesheet.CategoryLeave, days[1].Category)
	assert.Equal(t, timesheet.CategoryAbsent, days[2].Category)
}

func TestEngine_BuildTimesheet_FirstApprovedLeaveWins(t *testing.T) {
	engine := NewEngine(time.Sunday)
	leaves := []leave.LeaveRequest{
		approvedLeave(testEmployeeID, leave.LeaveTypeCasual, 5, 7),
		approvedLeave(testEmployeeID, leave.LeaveTypeSick, 6, 6),
	}

	days, err := engine.BuildTimesheet(testEmployeeID, oct(6), oct(6), nil, leaves, nil, oct(15))

	require.NoError(t, err)
	assert.Equal(t, "Casual Leave", days[0].Label)
}

func TestEngine_BuildTimesheet_ConfigurableRestDay(t *testing.T) {
	engine := NewEngine(time.Friday)

	// Oct 2 is a Friday, Oct 4 a Sunday
	days, err := engine.BuildTimesheet(testEmployeeID, oct(2), oct(4), nil, nil, nil, oct(15))
	require.NoError(t, err)

	assert.Equal(t, timesheet.CategoryWeekend, days[0].Category)
	assert.Equal(t, "Friday", days[0].Label)
	assert.Equal(t, timesheet.CategoryAbsent, days[2].Category)
}

func TestEngine_BuildTimesheet_Deterministic(t *testing.T) {
	engine := NewEngine(time.Sunday)
	records := []attendance.Attendance{record(testEmployeeID, 7, "8"), record(testEmployeeID, 8, "6")}
	leaves := []leave.LeaveRequest{approvedLeave(testEmployeeID, leave.LeaveTypeSick, 9, 10)}
	holidays := []holiday.Holiday{{Date: oct(2), Name: "Gandhi Jayanti"}}

	first, err := engine.BuildTimesheet(testEmployeeID, oct(1), oct(31), records, leaves, holidays, oct(15))
	require.NoError(t, err)
	second, err := engine.BuildTimesheet(testEmployeeID, oct(1), oct(31), records, leaves, holidays, oct(15))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
