package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerpot-server/internal/util"
	"pokerpot-server/pkg/table"
)

// Config provides configuration for the pokerpot server
type Config struct {
	loaded bool

	Addr    string `yaml:"addr"`
	Version string `yaml:"version"`
	Log     struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	CORS struct {
		Origins []string `yaml:"origins"`
	}
	JWT struct {
		Secret string `yaml:"secret"`
	}
	Admin struct {
		Token string `yaml:"token"`
	}
	PGDSN          string        `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string        `yaml:"migrationsPath" envconfig:"migrations_path"`
	SweepInterval  time.Duration `yaml:"sweepInterval" envconfig:"sweep_interval"`
	Game           Game          `yaml:"game"`
}

// Game holds the defaults for new rooms
type Game struct {
	MaxPlayers            int `yaml:"maxPlayers" envconfig:"max_players"`
	DefaultInitialBalance int `yaml:"defaultInitialBalance" envconfig:"default_initial_balance"`
	DefaultInitialBet     int `yaml:"defaultInitialBet" envconfig:"default_initial_bet"`
	RoomCodeLength        int `yaml:"roomCodeLength" envconfig:"room_code_length"`
}

// Settings returns the settings used for rooms created without any
func (g Game) Settings() table.Settings {
	s := table.DefaultSettings()
	if g.MaxPlayers > 0 {
		s.MaxPlayers = g.MaxPlayers
	}

	if g.DefaultInitialBalance > 0 {
		s.InitialBalance = g.DefaultInitialBalance
	}

	if g.DefaultInitialBet > 0 {
		s.InitialBetAmount = g.DefaultInitialBet
	}

	return s
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides are present
func DefaultConfig() Config {
	var c Config
	c.Addr = ":5000"
	c.Version = "v0.0.0-dev"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CORS.Origins = []string{"http://localhost:3000"}
	c.MigrationsPath = "./sql"
	c.SweepInterval = time.Minute * 5

	s := table.DefaultSettings()
	c.Game = Game{
		MaxPlayers:            s.MaxPlayers,
		DefaultInitialBalance: s.InitialBalance,
		DefaultInitialBet:     s.InitialBetAmount,
		RoomCodeLength:        table.DefaultCodeLength,
	}

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional. Environment variables prefixed with POKERPOT_ take precedence.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("POKERPOT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pokerpot", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
