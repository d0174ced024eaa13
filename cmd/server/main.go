package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"pokerpot-server/internal/config"
	"pokerpot-server/internal/jwt"
	"pokerpot-server/internal/mux"
	"pokerpot-server/pkg/db"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// memoryHandsPerRoom is how many hands a room keeps when there is no database
const memoryHandsPerRoom = 100

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env file")
	}

	cfg := config.Instance()
	setupLogger(cfg)

	// fail fast
	jwt.LoadSecret()

	settings := cfg.Game.Settings()
	pitBoss := room.NewPitBoss(room.Options{
		Logger:          logrus.StandardLogger(),
		Recorder:        newRecorder(cfg),
		CodeLength:      cfg.Game.RoomCodeLength,
		DefaultSettings: &settings,
		SweepInterval:   cfg.SweepInterval,
		SignToken:       jwt.Sign,
	})
	pitBoss.StartShift()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(cfg.Version, pitBoss, cfg.Admin.Token))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals

		logrus.Info("shutting down")
		pitBoss.EndShift()
		_ = srv.Close()
	}()

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"version": cfg.Version,
	}).Info("listening")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// newRecorder stores hand history in Postgres when a DSN is configured
func newRecorder(cfg config.Config) history.Recorder {
	if cfg.PGDSN == "" {
		logrus.Info("no database configured, hand history is kept in memory")
		return history.NewMemory(memoryHandsPerRoom)
	}

	if err := db.Migrate(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not migrate database")
	}

	return history.NewPostgres(db.Instance())
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
