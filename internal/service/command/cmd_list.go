package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/scoutbot/internal/core"
)

type ListCommand struct {
	conns     core.ConnectionManager
	store     core.HistoryRepository
	formatter *ResponseFormatter
}

func NewListCommand(conns core.ConnectionManager, store core.HistoryRepository) *ListCommand {
	return &ListCommand{
		conns:     conns,
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "List tracked channels per connected platform"
}

func (c *ListCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	connected := c.conns.Connected(userID)
	if len(connected) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("No Platforms Connected"),
			c.formatter.Tip("Use /connect to add one."),
		), nil
	}

	sections := []string{c.formatter.Info("Tracked Channels")}
	for _, platform := range connected {
		channelIDs := c.store.Channels(userID, platform)
		if len(channelIDs) == 0 {
			sections = append(sections, c.formatter.Label(string(platform), "no messages yet"))
			continue
		}

		items := make([]string, 0, len(channelIDs))
		for _, id := range channelIDs {
			name := id
			if msgs := c.store.Messages(userID, platform, id); len(msgs) > 0 {
				name = msgs[0].ChannelName
			}
			items = append(items, fmt.Sprintf("#%s (%s)", name, id))
		}
		sections = append(sections, c.formatter.Section("📡", string(platform), c.formatter.List(items)))
	}

	return c.formatter.Combine(sections...), nil
}
