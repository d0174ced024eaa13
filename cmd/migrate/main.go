package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"pokerpot-server/internal/config"
	"pokerpot-server/pkg/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Instance()
	waitForDB(cfg.PGDSN)

	if err := db.Migrate(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB(dsn string) {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			err := db.LoadInstance(dsn)
			if err == nil {
				return
			}

			if err == db.ErrNotConfigured {
				logrus.Fatal("POKERPOT_PG_DSN is not set")
			}

			logrus.WithError(err).Debug("database is not ready")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
