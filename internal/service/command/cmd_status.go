package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/scoutbot/internal/core"
)

type StatusCommand struct {
	conns     core.ConnectionManager
	store     core.HistoryRepository
	formatter *ResponseFormatter
}

func NewStatusCommand(conns core.ConnectionManager, store core.HistoryRepository) *StatusCommand {
	return &StatusCommand{
		conns:     conns,
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatusCommand) Name() string {
	return "status"
}

func (c *StatusCommand) Description() string {
	return "Show connected platforms and buffered message counts"
}

func (c *StatusCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	connected := c.conns.Connected(userID)
	if len(connected) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("No Platforms Connected"),
			c.formatter.Tip("Use /connect to add one."),
		), nil
	}

	items := make([]string, 0, len(connected))
	for _, platform := range connected {
		count := c.store.MessageCount(userID, platform)
		channels := len(c.store.Channels(userID, platform))
		items = append(items, fmt.Sprintf("**%s**: %d messages across %d channels", platform, count, channels))
	}

	return c.formatter.Combine(
		c.formatter.Info("Connection Status"),
		c.formatter.List(items),
	), nil
}
