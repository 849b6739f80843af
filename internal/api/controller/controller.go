package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/openair/aqimon/internal/service/auth"
	"github.com/openair/aqimon/internal/service/prediction"
	"github.com/openair/aqimon/internal/service/stations"
	"github.com/openair/aqimon/internal/service/user"
)

type Controller struct {
	auth        *auth.Service
	users       *user.Service
	predictions *prediction.Service
	stations    *stations.Service
}

func NewController(a *auth.Service, u *user.Service, p *prediction.Service, s *stations.Service) *Controller {
	return &Controller{auth: a, users: u, predictions: p, stations: s}
}

// username reads the value AuthMiddleware stored on the context.
func username(ctx echo.Context) (string, error) {
	name, ok := ctx.Get(constants.CtxKeyUsername).(string)
	if !ok || name == "" {
		return "", constants.ErrUnauthorized
	}
	return name, nil
}
