package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// FindByRange returns holidays dated within [start, end], ascending by date.
	FindByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
