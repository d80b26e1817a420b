package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/scoutbot/internal/config"
	"github.com/sandevgo/scoutbot/internal/connector/discord"
	"github.com/sandevgo/scoutbot/internal/connector/slack"
	"github.com/sandevgo/scoutbot/internal/connector/telegram"
	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/command"
	"github.com/sandevgo/scoutbot/internal/service/conns"
	"github.com/sandevgo/scoutbot/internal/service/finder"
	"github.com/sandevgo/scoutbot/internal/service/history"
	"github.com/sandevgo/scoutbot/internal/storage/sqlite"
	"github.com/sandevgo/scoutbot/internal/transport/cli"
	tgbot "github.com/sandevgo/scoutbot/internal/transport/telegram"
	"github.com/sandevgo/scoutbot/pkg/log"
	"github.com/sandevgo/scoutbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, connsRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Message history
	store := history.NewStore()

	// 4. Connection manager
	// Restores saved platform sessions on start, runs them until shutdown
	manager := conns.NewManager(store, connsRepo, newConnector)
	services = append(services, manager)

	// 5. Query pipeline
	fnd := finder.NewFinder(store, manager)

	// 6. Commands
	router := command.New(command.NewCommands(manager, store))

	// 7. Transports
	transports, err := initTransports(ctx, appCfg, router, fnd)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func newConnector(creds core.Credentials, store core.HistoryRepository) (core.Connector, error) {
	switch creds.Platform {
	case core.PlatformTelegram:
		return telegram.New(creds.UserID, creds.Token, store)
	case core.PlatformDiscord:
		return discord.New(creds.UserID, creds.Token, store)
	case core.PlatformSlack:
		return slack.New(creds.UserID, creds.Token, store)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", creds.Platform)
	}
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.ConnectionsRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewConnectionsRepo(db), nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, router core.CmdRouter, fnd *finder.Finder) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if cfg.IsTelegramSelected() {
		hostCfg := config.NewHostConfig(ctx)
		bot, err := tgbot.NewBot(ctx, hostCfg, router, fnd)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Local console
	if cfg.IsCLISelected() {
		console, err := cli.NewReadLine(cfg, router, fnd)
		if err != nil {
			return nil, err
		}
		services = append(services, console)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
