package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain/dto"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/spf13/viper"
)

// ImportStationData pulls published readings from a monitoring-station
// page and records a prediction for each. The page defaults to the
// configured stations URL; the request may override it.
func (c *Controller) ImportStationData(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	request := new(dto.StationImportRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	pageURL := request.URL
	if pageURL == "" {
		pageURL = viper.GetString(constants.ViperStationsURL)
	}
	if pageURL == "" {
		return constants.NewCodedError(http.StatusBadRequest, "no station page configured")
	}

	results, err := c.stations.Import(ctx.Request().Context(), pageURL, name)
	if err != nil {
		return err
	}

	resp := dto.StationImportResponse{Imported: make([]dto.StationPrediction, 0, len(results))}
	for _, r := range results {
		resp.Imported = append(resp.Imported, dto.StationPrediction{
			Station: r.Station,
			AQI:     r.Prediction.Record.AQI,
			Status:  r.Prediction.Record.Status,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}
