package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain/dto"
)

func (c *Controller) GetHistory(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	limit, err := strconv.ParseUint(ctx.QueryParams().Get("limit"), 10, 64)
	if err != nil {
		limit = 0
	}

	records, err := c.predictions.History(ctx.Request().Context(), name, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.HistoryResponse{Records: records})
}

func (c *Controller) GetHistoryStats(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	stats, err := c.predictions.Stats(ctx.Request().Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}
