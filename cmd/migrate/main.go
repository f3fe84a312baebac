// Command migrate applies the ledger database schema.
package main

import (
	"carteras/internal/config"
	"carteras/internal/repositories"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	db, err := repositories.Connect()
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := repositories.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	logrus.Info("migrations applied")
}
