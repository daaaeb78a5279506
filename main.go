package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/compta-server/api"
	"github.com/carson-networks/compta-server/internal/config"
	"github.com/carson-networks/compta-server/internal/logging"
	"github.com/carson-networks/compta-server/internal/operator"
	"github.com/carson-networks/compta-server/internal/service"
	"github.com/carson-networks/compta-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.StorageBackend).Info("compta-server starting")

	store, err := storage.Open(envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("storage.Open")
	}
	defer store.Close()

	delegator := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator, service.Options{
		ReportCacheSize: envConfig.ReportCacheSize,
		ReportCacheTTL:  envConfig.ReportCacheTTL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Storage: store,
		Service: svc,
	}
	httpRest.Serve(ctx)
}
