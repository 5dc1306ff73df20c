package timesheet

import (
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/domain/leave"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
)

// Engine classifies calendar dates from raw attendance and calendar facts.
// It never reads the clock or storage, so the same inputs always yield the
// same sequence.
type Engine struct {
	restDay time.Weekday
}

func NewEngine(restDay time.Weekday) *Engine {
	return &Engine{restDay: restDay}
}

func (e *Engine) RestDay() time.Weekday {
	return e.restDay
}

// BuildTimesheet returns one DayStatus per date in [start, end], ascending.
// For each date the first matching rule wins:
//
//  1. holiday
//  2. weekly rest day
//  3. approved leave of the employee covering the date
//  4. attendance record
//  5. absent, when the date is before today
//  6. pending otherwise
//
// Records and leaves belonging to other employees, and leaves that are not
// approved, are ignored.
func (e *Engine) BuildTimesheet(
	employeeID string,
	start, end time.Time,
	records []attendance.Attendance,
	leaves []leave.LeaveRequest,
	holidays []holiday.Holiday,
	today time.Time,
) ([]timesheet.DayStatus, error) {
	window := calendar.NewRange(start, end)
	if !window.Valid() {
		return nil, timesheet.ErrInvalidDateRange
	}
	today = calendar.Day(today)

	holidayByDate := make(map[time.Time]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		date := calendar.Day(h.Date)
		if _, ok := holidayByDate[date]; !ok {
			holidayByDate[date] = h
		}
	}

	recordByDate := make(map[time.Time]attendance.Attendance, len(records))
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		date := calendar.Day(r.Date)
		if _, ok := recordByDate[date]; !ok {
			recordByDate[date] = r
		}
	}

	approved := make([]leave.LeaveRequest, 0, len(leaves))
	for _, l := range leaves {
		if l.EmployeeID != employeeID || l.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		l.StartDate = calendar.Day(l.StartDate)
		l.EndDate = calendar.Day(l.EndDate)
		approved = append(approved, l)
	}

	days := make([]timesheet.DayStatus, 0, window.Days())
	for _, date := range window.Dates() {
		days = append(days, e.classify(date, today, holidayByDate, approved, recordByDate))
	}

	return days, nil
}

func (e *Engine) classify(
	date, today time.Time,
	holidayByDate map[time.Time]holiday.Holiday,
	approved []leave.LeaveRequest,
	recordByDate map[time.Time]attendance.Attendance,
) timesheet.DayStatus {
	day := timesheet.DayStatus{Date: date}

	if h, ok := holidayByDate[date]; ok {
		day.Category = timesheet.CategoryHoliday
		day.Label = h.Name
		return day
	}

	if date.Weekday() == e.restDay {
		day.Category = timesheet.CategoryWeekend
		day.Label = date.Weekday().String()
		return day
	}

	for _, l := range approved {
		if l.Covers(date) {
			day.Category = timesheet.CategoryLeave
			day.Label = l.LeaveType.Label()
			return day
		}
	}

	if r, ok := recordByDate[date]; ok {
		status := string(r.Status)
		if status == "" {
			status = string(attendance.StatusPresent)
		}
		day.Category = timesheet.CategoryPresent
		day.Label = timesheet.LabelPresent
		day.ClockIn = r.ClockIn
		day.ClockOut = r.ClockOut
		day.TotalHours = r.TotalHours
		day.AttendanceStatus = &status
		return day
	}

	if date.Before(today) {
		day.Category = timesheet.CategoryAbsent
		day.Label = timesheet.LabelAbsent
		return day
	}

	day.Category = timesheet.CategoryPending
	day.Label = timesheet.LabelPending
	return day
}
