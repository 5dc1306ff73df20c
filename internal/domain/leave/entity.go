package leave

import (
	"time"
)

// LeaveRequest is a request for absence over an inclusive date range.
// Only approved requests affect attendance reconciliation.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	// Inclusive calendar dates
	StartDate time.Time
	EndDate   time.Time

	Reason string
	Status LeaveRequestStatus // 'pending', 'approved', 'rejected', 'cancelled'

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypePaid   LeaveType = "paid"
)

// Label is the display name used for leave days on a timesheet.
func (t LeaveType) Label() string {
	switch t {
	case LeaveTypeSick:
		return "Sick Leave"
	case LeaveTypeCasual:
		return "Casual Leave"
	case LeaveTypePaid:
		return "Paid Leave"
	default:
		return "Leave"
	}
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// Covers reports whether date falls inside the request's inclusive range.
func (r LeaveRequest) Covers(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
