package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	"github.com/spdf36/gts-hrms/internal/pkg/calendar"
)

const HolidayKeyPrefix = "holidays:"

// HolidayKey is the cache key for the holidays of [start, end].
func HolidayKey(start, end time.Time) string {
	return HolidayKeyPrefix + start.Format(calendar.DateLayout) + ":" + end.Format(calendar.DateLayout)
}

// holidayRepository is a read-through cache in front of another HolidayRepository.
// Redis failures are logged and the request falls through to the next repository.
type holidayRepository struct {
	next holiday.HolidayRepository
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewHolidayRepository(next holiday.HolidayRepository, rdb redis.Cmdable, ttl time.Duration) holiday.HolidayRepository {
	return &holidayRepository{next: next, rdb: rdb, ttl: ttl}
}

// FindByRange implements holiday.HolidayRepository.
func (h *holidayRepository) FindByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	key := HolidayKey(start, end)

	cached, err := h.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var holidays []holiday.Holiday
		if jsonErr := json.Unmarshal([]byte(cached), &holidays); jsonErr == nil {
			return holidays, nil
		}
		slog.Warn("discarding malformed holiday cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("holiday cache read failed", "key", key, "error", err)
	}

	holidays, err := h.next.FindByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to encode holidays for cache: %w", err)
	}
	if err := h.rdb.Set(ctx, key, data, h.ttl).Err(); err != nil {
		slog.Warn("holiday cache write failed", "key", key, "error", err)
	}

	return holidays, nil
}
