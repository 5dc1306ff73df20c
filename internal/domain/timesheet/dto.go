package timesheet

import (
	"github.com/spdf36/gts-hrms/internal/pkg/validator"
)

// MaxRangeDays bounds the window a single timesheet may cover.
const MaxRangeDays = 366

// TimesheetFilter selects the window: either Month or StartDate/EndDate.
// When both are empty the month containing today is used.
type TimesheetFilter struct {
	Month     *string `json:"month,omitempty"`      // YYYY-MM
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	hasMonth := f.Month != nil && *f.Month != ""
	hasStart := f.StartDate != nil && *f.StartDate != ""
	hasEnd := f.EndDate != nil && *f.EndDate != ""

	if hasMonth {
		if _, valid := validator.IsValidMonth(*f.Month); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
		if hasStart || hasEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month cannot be combined with start_date or end_date",
			})
		}
	}

	var startOK, endOK bool
	if hasStart {
		_, startOK = validator.IsValidDate(*f.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if hasEnd {
		_, endOK = validator.IsValidDate(*f.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if hasStart != hasEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if hasStart && hasEnd && startOK && endOK {
		start, _ := validator.IsValidDate(*f.StartDate)
		end, _ := validator.IsValidDate(*f.EndDate)
		if !end.Before(start) && int(end.Sub(start).Hours()/24)+1 > MaxRangeDays {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "date range must not exceed " + validator.Itoa(MaxRangeDays) + " days",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayStatusResponse struct {
	Date             string   `json:"date"`
	Weekday          string   `json:"weekday"`
	Category         string   `json:"category"`
	Label            string   `json:"label"`
	ClockInTime      *string  `json:"clock_in_time,omitempty"`
	ClockOutTime     *string  `json:"clock_out_time,omitempty"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	AttendanceStatus *string  `json:"attendance_status,omitempty"`
}

type SummaryResponse struct {
	PresentCount int     `json:"present_count"`
	LeaveCount   int     `json:"leave_count"`
	HolidayCount int     `json:"holiday_count"`
	AbsentCount  int     `json:"absent_count"`
	WeekendCount int     `json:"weekend_count"`
	PendingCount int     `json:"pending_count"`
	TotalHours   float64 `json:"total_hours"`
}

type TimesheetResponse struct {
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name,omitempty"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Days         []DayStatusResponse `json:"days"`
	Summary      SummaryResponse     `json:"summary"`
}

// CalendarResponse lays the window out on a Sunday-first grid.
// LeadingBlanks is the number of empty cells before StartDate.
type CalendarResponse struct {
	TimesheetResponse
	LeadingBlanks int `json:"leading_blanks"`
}
