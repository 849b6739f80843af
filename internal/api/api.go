package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openair/aqimon/internal/api/controller"
	"github.com/openair/aqimon/internal/config"
	"github.com/openair/aqimon/internal/pkg/logger"
	"github.com/openair/aqimon/internal/service/auth"
	"github.com/openair/aqimon/internal/service/prediction"
	"github.com/openair/aqimon/internal/service/stations"
	"github.com/openair/aqimon/internal/service/user"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the underlying echo instance for tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

type Services struct {
	Auth        *auth.Service
	Users       *user.Service
	Predictions *prediction.Service
	Stations    *stations.Service
}

func NewAPIService(cfg *config.Config, services Services) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(services.Auth, services.Users, services.Predictions, services.Stations)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.DELETE("/logout", cntrl.LogoutUser)

	api.POST("/predict", cntrl.Predict, svc.AuthMiddleware)

	history := api.Group("/history", svc.AuthMiddleware)
	history.GET("", cntrl.GetHistory)
	history.GET("/stats", cntrl.GetHistoryStats)

	api.GET("/user", cntrl.GetUser, svc.AuthMiddleware)

	settings := api.Group("/settings", svc.AuthMiddleware)
	settings.GET("", cntrl.GetSettings)
	settings.PUT("", cntrl.SaveSettings)

	api.POST("/stations/import", cntrl.ImportStationData, svc.AuthMiddleware)

	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return svc, nil
}
