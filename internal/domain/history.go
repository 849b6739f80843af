package domain

import (
	"time"

	"github.com/openair/aqimon/internal/pkg/aqi"
)

// HistoryRecord is one computed prediction. Records are append-only:
// nothing ever updates a row after AppendHistory.
type HistoryRecord struct {
	ID         string    `db:"id" json:"id"`
	Username   string    `db:"username" json:"-"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	AQI        aqi.Index `db:"aqi" json:"aqi"`
	PM25       float64   `db:"pm25" json:"pm25"`
	PM10       float64   `db:"pm10" json:"pm10"`
	NO2        float64   `db:"no2" json:"no2"`
	SO2        float64   `db:"so2" json:"so2"`
	CO         float64   `db:"co" json:"co"`
	O3         float64   `db:"o3" json:"o3"`
	Status     string    `db:"status" json:"status"`
}

// HistoryStats is the per-user aggregate over all history rows.
type HistoryStats struct {
	Total int64   `db:"total" json:"total"`
	Avg   float64 `db:"avg" json:"avg"`
	Max   float64 `db:"max" json:"max"`
	Min   float64 `db:"min" json:"min"`
}
