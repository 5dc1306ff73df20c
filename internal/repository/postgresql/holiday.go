package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// FindByRange implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) FindByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name, category
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hd holiday.Holiday
		if err := rows.Scan(&hd.ID, &hd.Date, &hd.Name, &hd.Category); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hd)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
