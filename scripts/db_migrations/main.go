package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/compta-server/internal/config"
	"github.com/carson-networks/compta-server/internal/storage/sqlconfig"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
	}

	result, err := sqlconfig.RunMigrations(env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.RunMigrations")
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Migration status")
}
