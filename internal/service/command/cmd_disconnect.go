package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/scoutbot/internal/core"
)

type DisconnectCommand struct {
	conns     core.ConnectionManager
	formatter *ResponseFormatter
}

func NewDisconnectCommand(conns core.ConnectionManager) *DisconnectCommand {
	return &DisconnectCommand{
		conns:     conns,
		formatter: NewResponseFormatter(),
	}
}

func (c *DisconnectCommand) Name() string {
	return "disconnect"
}

func (c *DisconnectCommand) Description() string {
	return "Disconnect one or all platforms and wipe their history"
}

func (c *DisconnectCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	if len(args) == 0 {
		if err := c.conns.DisconnectAll(ctx, userID); err != nil {
			return "", fmt.Errorf("failed to disconnect: %w", err)
		}
		return c.formatter.Success("Disconnected from all platforms, history cleared"), nil
	}

	platform, ok := core.ParsePlatform(strings.ToLower(args[0]))
	if !ok {
		return "", fmt.Errorf("unknown platform %q (telegram, discord, slack)", args[0])
	}

	if err := c.conns.Disconnect(ctx, userID, platform); err != nil {
		return "", fmt.Errorf("failed to disconnect %s: %w", platform, err)
	}
	return c.formatter.Success(fmt.Sprintf("Disconnected from %s, history cleared", platform)), nil
}
