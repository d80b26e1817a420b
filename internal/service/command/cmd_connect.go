package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/scoutbot/internal/core"
)

type ConnectCommand struct {
	conns     core.ConnectionManager
	formatter *ResponseFormatter
}

func NewConnectCommand(conns core.ConnectionManager) *ConnectCommand {
	return &ConnectCommand{
		conns:     conns,
		formatter: NewResponseFormatter(),
	}
}

func (c *ConnectCommand) Name() string {
	return "connect"
}

func (c *ConnectCommand) Description() string {
	return "Connect a messaging platform for ingestion"
}

func (c *ConnectCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	if len(args) < 2 {
		return c.formatter.Combine(
			c.formatter.Info("Connect a Platform"),
			c.formatter.Usage("/connect [platform] [token...]"),
			c.formatter.Examples([]string{
				"/connect telegram 123456789:ABCDEF...",
				"/connect discord MTAxO...",
				"/connect slack xoxb-... xapp-...",
			}),
			c.formatter.Tip("Slack needs both the bot token and the Socket Mode app token."),
		), nil
	}

	platform, ok := core.ParsePlatform(strings.ToLower(args[0]))
	if !ok {
		return "", fmt.Errorf("unknown platform %q (telegram, discord, slack)", args[0])
	}

	token := strings.Join(args[1:], " ")
	if err := c.conns.Connect(ctx, userID, platform, token); err != nil {
		return "", fmt.Errorf("failed to connect %s: %w", platform, err)
	}

	return c.formatter.Combine(
		c.formatter.Success(fmt.Sprintf("Connected to %s", platform)),
		c.formatter.Tip("Incoming messages are now searchable. Just type what you are looking for."),
	), nil
}
