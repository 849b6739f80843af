package dto

import (
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/pkg/aqi"
)

type PredictResponse struct {
	AQI        aqi.Index        `json:"aqi"`
	Tier       aqi.Tier         `json:"tier"`
	Record     string           `json:"record_id"`
	RecordedAt string           `json:"recorded_at"`
	Alerted    bool             `json:"alerted"`
	Deliveries []DeliveryResult `json:"deliveries,omitempty"`
}

type DeliveryResult struct {
	Channel string `json:"channel"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
}

type HistoryResponse struct {
	Records []*domain.HistoryRecord `json:"records"`
}

type StationImportResponse struct {
	Imported []StationPrediction `json:"imported"`
}

type StationPrediction struct {
	Station string    `json:"station"`
	AQI     aqi.Index `json:"aqi"`
	Status  string    `json:"status"`
}
