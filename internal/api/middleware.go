package api

import (
	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/openair/aqimon/internal/pkg/utils"
)

// AuthMiddleware resolves the auth cookie to a username and stores it on
// the request context for controllers.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUsername, token.Username)

		return next(ctx)
	}
}
