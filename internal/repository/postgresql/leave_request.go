package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/leave"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// FindApprovedByEmployeeAndRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) FindApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap test: the request starts before the window ends and ends after it starts
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.approved_by, lr.approved_at, lr.created_at, lr.updated_at
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status = $2
		  AND lr.start_date <= $4
		  AND lr.end_date >= $3
		ORDER BY lr.start_date ASC, lr.created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveRequestStatusApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID,
			&lr.EmployeeID,
			&lr.LeaveType,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Reason,
			&lr.Status,
			&lr.ApprovedBy,
			&lr.ApprovedAt,
			&lr.CreatedAt,
			&lr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
