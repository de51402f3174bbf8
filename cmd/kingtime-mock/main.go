// kingtime-mock runs a local stand-in for api.kingtime.jp, for developing
// against the client without a real tenant. Point the tc CLI at it with
// TC_KINGTIME_BASE_URL=http://localhost:8090/v1.0.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/kintai-tools/kingtime-go/mockserver"
)

// Config is read from MOCK_* environment variables (optionally via .env).
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8090"`
	Token    string `envconfig:"TOKEN" default:"local-dev-token"`
	Fixtures string `envconfig:"FIXTURES"` // optional YAML seed file
	DSN      string `envconfig:"DSN"`      // sqlite path, in-memory when empty
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("mock", &cfg); err != nil {
		stderrLogger := zerolog.New(os.Stderr)
		stderrLogger.Fatal().Err(err).Msg("configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "kingtime-mock").
		Logger().
		Level(level)

	fixtures := mockserver.DefaultFixtures()
	if cfg.Fixtures != "" {
		fixtures, err = mockserver.LoadFixtures(cfg.Fixtures)
		if err != nil {
			logger.Fatal().Err(err).Msg("load fixtures")
		}
	}

	db, err := mockserver.OpenStore(cfg.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store")
	}

	for _, emp := range fixtures.Employees {
		logger.Info().Str("code", emp.Code).Str("key", emp.Key).Msg("seeded employee")
	}

	server := mockserver.New(cfg.Token, fixtures, db, logger)
	logger.Info().Str("addr", cfg.Addr).Msg("kingtime mock listening")
	if err := server.Router().Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
