package attendance

import (
	"errors"

	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
)

// Attendance domain errors
var (
	// Clock session errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// ErrInvalidDateRange is reported for history windows that end before they start.
var ErrInvalidDateRange = calendar.ErrInvalidDateRange
