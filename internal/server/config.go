package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/DjordjeVuckovic/logicka/pkg/config/env"
)

const (
	DefaultPort           = "8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultEnvPath        = "cmd/logic_api/.env"
)

type Config struct {
	Env              string
	Port             string
	UseHttp2         bool
	CorsOrigins      []string
	MaxFreeVariables int
	RequestTimeout   time.Duration
	LogLevel         slog.Level
}

func LoadConfig() (*Config, error) {
	environment := env.String("ENV", "production")
	if err := env.LoadDotEnv(environment, DefaultEnvPath); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := env.String("PORT", DefaultPort)
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := env.List("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxFree, err := env.Int("MAX_FREE_VARIABLES", truthtable.DefaultMaxFreeVariables)
	if err != nil {
		return nil, err
	}
	if maxFree < 1 || maxFree > truthtable.MaxFreeVariablesCeiling {
		return nil, fmt.Errorf("MAX_FREE_VARIABLES must be between 1 and %d", truthtable.MaxFreeVariablesCeiling)
	}

	timeout, err := env.Duration("REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be positive")
	}

	level, err := env.LogLevel("LOG_LEVEL", "info")
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:              environment,
		Port:             port,
		UseHttp2:         env.Bool("USE_HTTP2"),
		CorsOrigins:      origins,
		MaxFreeVariables: maxFree,
		RequestTimeout:   timeout,
		LogLevel:         level,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
