package timesheet

import (
	"github.com/shopspring/decimal"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
)

// Summarize tallies days per category and sums worked hours of present days.
func Summarize(days []timesheet.DayStatus) timesheet.Summary {
	summary := timesheet.Summary{TotalHours: decimal.Zero}

	for _, day := range days {
		switch day.Category {
		case timesheet.CategoryPresent:
			summary.PresentCount++
			summary.TotalHours = summary.TotalHours.Add(day.TotalHours)
		case timesheet.CategoryLeave:
			summary.LeaveCount++
		case timesheet.CategoryHoliday:
			summary.HolidayCount++
		case timesheet.CategoryAbsent:
			summary.AbsentCount++
		case timesheet.CategoryWeekend:
			summary.WeekendCount++
		case timesheet.CategoryPending:
			summary.PendingCount++
		}
	}

	summary.TotalHours = summary.TotalHours.Round(1)
	return summary
}
