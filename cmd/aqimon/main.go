package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/openair/aqimon/internal/api"
	"github.com/openair/aqimon/internal/config"
	"github.com/openair/aqimon/internal/observability"
	"github.com/openair/aqimon/internal/pkg/logger"
	"github.com/openair/aqimon/internal/pkg/store"
	"github.com/openair/aqimon/internal/pkg/store/xpgx"
	"github.com/openair/aqimon/internal/service/auth"
	"github.com/openair/aqimon/internal/service/notifier"
	"github.com/openair/aqimon/internal/service/prediction"
	"github.com/openair/aqimon/internal/service/stations"
	"github.com/openair/aqimon/internal/service/user"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(cfg.LogLevel)

	pgxPool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	pool := xpgx.NewPool(pgxPool)
	defer pool.Close()

	st := store.NewStore(pool)
	metrics := observability.NewMetrics()

	email := notifier.NewEmailDispatcher(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	sms := notifier.NewSMSDispatcher(cfg.SMSAPIKey, cfg.SMSAPIURL)

	predictions := prediction.NewService(st, email, sms, clockwork.NewRealClock(), metrics)

	svc, err := api.NewAPIService(cfg, api.Services{
		Auth:        auth.NewService(st),
		Users:       user.NewService(st),
		Predictions: predictions,
		Stations:    stations.NewService(predictions),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.HTTPAddr)
	logger.Infof(ctx, "listening on %s", cfg.HTTPAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
