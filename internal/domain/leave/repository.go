package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - read view over the leave_requests table
type LeaveRequestRepository interface {
	// FindApprovedByEmployeeAndRange returns approved requests of the employee
	// that overlap [start, end].
	FindApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}
