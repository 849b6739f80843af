package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain/dto"
)

func (c *Controller) GetSettings(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	settings, err := c.users.GetSettings(ctx.Request().Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, settings)
}

func (c *Controller) SaveSettings(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	request := new(dto.SettingsRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	settings, err := c.users.SaveSettings(ctx.Request().Context(), name, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, settings)
}
