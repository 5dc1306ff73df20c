package attendance

import (
	"github.com/spdf36/gts-hrms/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
	State        string  `json:"state"`
	ClockSkew    bool    `json:"clock_skew,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// TodayStatusResponse keeps the nullable-record contract (Attendance is null
// before clock-in, ClockOutTime is null while working) next to the explicit state.
type TodayStatusResponse struct {
	Date          string              `json:"date"`
	State         string              `json:"state"`
	HasClockedIn  bool                `json:"has_clocked_in"`
	HasClockedOut bool                `json:"has_clocked_out"`
	CanClockIn    bool                `json:"can_clock_in"`
	CanClockOut   bool                `json:"can_clock_out"`
	Attendance    *AttendanceResponse `json:"attendance"`
	Message       string              `json:"message"`
}

// MaxRangeDays bounds any date window a caller may request.
const MaxRangeDays = 366

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	errs = append(errs, validateRange(f.StartDate, f.EndDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateRange(f.StartDate, f.EndDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

func validateRange(startDate, endDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	hasStart := startDate != nil && *startDate != ""
	hasEnd := endDate != nil && *endDate != ""

	start, startValid := validator.IsValidDate(deref(startDate))
	if hasStart && !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(deref(endDate))
	if hasEnd && !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if hasStart != hasEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "start_date and end_date must be provided together",
		})
		return errs
	}

	// An inverted range is left to the service, which reports ErrInvalidDateRange.
	if hasStart && startValid && endValid && !end.Before(start) {
		if int(end.Sub(start).Hours()/24)+1 > MaxRangeDays {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "date range must not exceed " + validator.Itoa(MaxRangeDays) + " days",
			})
		}
	}

	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
