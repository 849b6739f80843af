package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetUser(ctx echo.Context) error {
	name, err := username(ctx)
	if err != nil {
		return err
	}

	user, err := c.users.GetUser(ctx.Request().Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}
