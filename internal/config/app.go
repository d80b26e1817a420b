package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/scoutbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"SCOUT_RUNTIME_PATH" envDefault:".scoutbot"`

	// Transport Flags
	EnableTelegram bool `env:"SCOUT_ENABLE_TELEGRAM" envDefault:"true"`
	EnableCLI      bool `env:"SCOUT_ENABLE_CLI" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "scoutbot.db")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
