package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/scoutbot/internal/config"
	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/finder"
	"github.com/sandevgo/scoutbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot is the host surface: the Telegram bot the owner talks to. Commands
// go to the router; any other text is a search query.
type Bot struct {
	bot     *tele.Bot
	cfg     *config.HostConfig
	router  core.CmdRouter
	finder  *finder.Finder
	send    *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.HostConfig,
	router core.CmdRouter,
	fnd *finder.Finder,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		router:  router,
		finder:  fnd,
		send:    newSender(b),
		ownerID: cfg.OwnerID,
	}

	// Use context from signal setup with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting host telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	userID := b.cfg.OwnerUserID()

	_ = c.Notify(tele.Typing)

	reply, handled := b.router.Execute(ctx, userID, c.Text())
	if !handled {
		reply = b.finder.Run(ctx, userID, c.Text())
	}

	if err := b.send.sendMarkdown(ctx, c.Chat(), reply); err != nil {
		logger.Error().Err(err).Msg("failed to send reply")
	}
	return nil
}
