package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain/dto"
	"github.com/openair/aqimon/internal/pkg/constants"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := new(dto.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	result, err := c.auth.SignupUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, result.AuthToken)
	return ctx.JSON(http.StatusCreated, result.User)
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := new(dto.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	result, err := c.auth.LoginUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, result.AuthToken)
	return ctx.JSON(http.StatusOK, result.User)
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
