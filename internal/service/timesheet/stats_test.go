package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func presentDay(hours string) timesheet.DayStatus {
	return timesheet.DayStatus{
		Category:   timesheet.CategoryPresent,
		Label:      timesheet.LabelPresent,
		TotalHours: decimal.RequireFromString(hours),
	}
}

func TestSummarize(t *testing.T) {
	days := []timesheet.DayStatus{
		presentDay("2"),
		presentDay("8"),
		presentDay("8"),
		presentDay("6"),
		{Category: timesheet.CategoryLeave, Label: "Sick Leave"},
		{Category: timesheet.CategoryLeave, Label: "Sick Leave"},
	}

	summary := Summarize(days)

	assert.Equal(t, 4, summary.PresentCount)
	assert.Equal(t, 2, summary.LeaveCount)
	assert.Equal(t, 0, summary.HolidayCount)
	assert.Equal(t, 0, summary.AbsentCount)
	assert.Equal(t, "24.0", summary.TotalHours.StringFixed(1))
}

func TestSummarize_AllCategories(t *testing.T) {
	days := []timesheet.DayStatus{
		presentDay("8.25"),
		presentDay("8.33"),
		{Category: timesheet.CategoryHoliday},
		{Category: timesheet.CategoryWeekend},
		{Category: timesheet.CategoryWeekend},
		{Category: timesheet.CategoryAbsent},
		{Category: timesheet.CategoryPending},
		{Category: timesheet.CategoryPending},
		{Category: timesheet.CategoryPending},
	}

	summary := Summarize(days)

	assert.Equal(t, 2, summary.PresentCount)
	assert.Equal(t, 1, summary.HolidayCount)
	assert.Equal(t, 2, summary.WeekendCount)
	assert.Equal(t, 1, summary.AbsentCount)
	assert.Equal(t, 3, summary.PendingCount)
	assert.Equal(t, "16.6", summary.TotalHours.StringFixed(1))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, timesheet.Summary{TotalHours: summary.TotalHours}, summary)
	assert.True(t, summary.TotalHours.IsZero())
}
