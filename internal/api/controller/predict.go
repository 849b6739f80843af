package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain/dto"
	"github.com/openair/aqimon/internal/pkg/aqi"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/openair/aqimon/internal/service/prediction"
)

func (c *Controller) Predict(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	request := new(dto.PredictRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	strategy, err := aqi.ParseStrategy(request.Strategy)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	profile, ok := aqi.ParseProfile(request.Profile)
	if !ok {
		return constants.NewCodedError(http.StatusBadRequest, "unknown profile: "+request.Profile)
	}

	result, err := c.predictions.Predict(ctx.Request().Context(), prediction.PredictOpts{
		Username: name,
		Reading: aqi.Reading{
			PM25: request.PM25,
			PM10: request.PM10,
			NO2:  request.NO2,
			SO2:  request.SO2,
			CO:   request.CO,
			O3:   request.O3,
		},
		Strategy: strategy,
		Profile:  profile,
	})
	if err != nil {
		return err
	}

	resp := dto.PredictResponse{
		AQI:        result.Record.AQI,
		Tier:       result.Tier,
		Record:     result.Record.ID,
		RecordedAt: result.Record.RecordedAt.Format("2006-01-02 15:04:05"),
		Alerted:    result.Alerted,
	}
	for _, d := range result.Deliveries {
		resp.Deliveries = append(resp.Deliveries, dto.DeliveryResult{Channel: d.Channel, OK: d.OK, Detail: d.Detail})
	}

	return ctx.JSON(http.StatusOK, resp)
}
