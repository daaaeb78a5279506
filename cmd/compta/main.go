package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/compta-server/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr, logrus.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApp(logger, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.WithError(err).Fatal("compta failed")
	}
}
