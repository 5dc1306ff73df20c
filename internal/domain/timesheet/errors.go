package timesheet

import "github.com/spdf36/gts-hrms/internal/pkg/calendar"

var (
	ErrInvalidDateRange = calendar.ErrInvalidDateRange
)
