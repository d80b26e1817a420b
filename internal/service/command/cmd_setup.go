package command

import (
	"context"
)

type SetupCommand struct {
	formatter *ResponseFormatter
}

func NewSetupCommand() *SetupCommand {
	return &SetupCommand{
		formatter: NewResponseFormatter(),
	}
}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Walk through connecting your platforms"
}

func (c *SetupCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info("Getting Started"),
		c.formatter.List([]string{
			"**Telegram**: create a bot via @BotFather, then `/connect telegram <token>`",
			"**Discord**: create a bot at discord.com/developers with the message content intent, then `/connect discord <token>`",
			"**Slack**: create a Socket Mode app, then `/connect slack <bot-token> <app-token>`",
		}),
		c.formatter.Tip("Once connected, just type a question like `what did dana say about the deploy in #general today`."),
	), nil
}
