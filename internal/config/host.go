package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/scoutbot/pkg/log"
)

// HostConfig configures the Telegram bot users talk to. The bot itself is
// the query surface; platform connections are set up per user at runtime.
type HostConfig struct {
	Token   string `env:"SCOUT_TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"SCOUT_TELEGRAM_OWNER_ID,required"`
}

func NewHostConfig(ctx context.Context) *HostConfig {
	c := &HostConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse host bot config")
	}
	return c
}

// OwnerUserID is the store/user identity for the bot owner.
func (c HostConfig) OwnerUserID() string {
	return fmt.Sprintf("telegram-%d", c.OwnerID)
}
