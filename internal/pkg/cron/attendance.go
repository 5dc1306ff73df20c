package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/employee"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

// absenceReportConcurrency caps parallel reconciliations per run.
const absenceReportConcurrency = 8

// AbsenceReport is the outcome of one ReportAbsences run.
type AbsenceReport struct {
	Date      time.Time
	Checked   int
	AbsentIDs []string
}

type AttendanceJobs struct {
	employeeRepo     employee.EmployeeRepository
	timesheetService timesheet.TimesheetService
	loc              *time.Location
	now              func() time.Time
}

func NewAttendanceJobs(
	employeeRepo employee.EmployeeRepository,
	timesheetService timesheet.TimesheetService,
	loc *time.Location,
	now func() time.Time,
) *AttendanceJobs {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceJobs{
		employeeRepo:     employeeRepo,
		timesheetService: timesheetService,
		loc:              loc,
		now:              now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("report_absences", interval, func(ctx context.Context) error {
		_, err := j.ReportAbsences(ctx)
		return err
	})
}

// ReportAbsences reconciles yesterday for every active employee and logs
// those classified absent. It never writes attendance rows.
func (j *AttendanceJobs) ReportAbsences(ctx context.Context) (AbsenceReport, error) {
	today := calendar.DateOf(j.now(), j.loc)
	yesterday := today.AddDate(0, 0, -1)
	report := AbsenceReport{Date: yesterday}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list active employees: %w", err)
	}
	report.Checked = len(employees)

	var (
		mu     sync.Mutex
		absent []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(absenceReportConcurrency)
	for _, emp := range employees {
		g.Go(func() error {
			days, _, err := j.timesheetService.Reconcile(ctx, emp.ID, calendar.NewRange(yesterday, yesterday), today)
			if err != nil {
				return fmt.Errorf("failed to reconcile employee %s: %w", emp.ID, err)
			}
			if len(days) == 1 && days[0].Category == timesheet.CategoryAbsent {
				slog.Info("Cron: employee absent",
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"date", yesterday.Format(calendar.DateLayout),
				)
				mu.Lock()
				absent = append(absent, emp.ID)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	report.AbsentIDs = absent
	slog.Info("Cron: absence report completed",
		"date", yesterday.Format(calendar.DateLayout),
		"checked", report.Checked,
		"absent", len(absent),
	)
	return report, nil
}
