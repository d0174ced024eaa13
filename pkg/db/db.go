package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // needed
	"github.com/sirupsen/logrus"
	"pokerpot-server/internal/config"
)

// ErrNotConfigured is returned when no DSN is configured
var ErrNotConfigured = errors.New("database is not configured")

var instance *sql.DB

// Instance returns a database instance
// It panics if the database cannot be reached
func Instance() *sql.DB {
	if instance == nil {
		if err := LoadInstance(config.Instance().PGDSN); err != nil {
			panic(err)
		}
	}

	return instance
}

// LoadInstance will open and ping the database
func LoadInstance(dsn string) error {
	if dsn == "" {
		return ErrNotConfigured
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	instance = db
	return nil
}

// Migrate runs the migrations found in migrationsPath
func Migrate(migrationsPath string) error {
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(Instance(), &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
