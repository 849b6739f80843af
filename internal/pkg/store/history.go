package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/openair/aqimon/internal/domain"
)

var historyColumns = []string{"id", "username", "recorded_at", "aqi", "pm25", "pm10", "no2", "so2", "co", "o3", "status"}

type ListHistoryOpts struct {
	Username string
	Limit    uint64
}

// AppendHistory inserts one record. There is deliberately no update or
// delete path: history rows are immutable once written.
func (s *store) AppendHistory(ctx context.Context, record *domain.HistoryRecord) error {
	query := builder().Insert(tableHistory).
		Columns(historyColumns...).
		Values(record.ID, record.Username, record.RecordedAt, record.AQI,
			record.PM25, record.PM10, record.NO2, record.SO2, record.CO, record.O3,
			record.Status)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListHistory(ctx context.Context, opts ListHistoryOpts) ([]*domain.HistoryRecord, error) {
	if opts.Limit == 0 {
		opts.Limit = 20
	}

	query := builder().Select(historyColumns...).
		From(tableHistory).
		Where(sq.Eq{"username": opts.Username}).
		OrderBy("recorded_at desc").
		Limit(opts.Limit)

	var selected []*domain.HistoryRecord
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetHistoryStats(ctx context.Context, username string) (*domain.HistoryStats, error) {
	query := builder().Select(
		"count(*) as total",
		"coalesce(avg(aqi), 0) as avg",
		"coalesce(max(aqi), 0) as max",
		"coalesce(min(aqi), 0) as min",
	).
		From(tableHistory).
		Where(sq.Eq{"username": username})

	var selected domain.HistoryStats
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
