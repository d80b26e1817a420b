package command

import (
	"context"
	"fmt"
	"sort"
)

type HelpCommand struct {
	commands  []string
	formatter *ResponseFormatter
}

// NewHelpCommand takes the already-built command list; it lists them plus
// itself.
func NewHelpCommand(others []Described) *HelpCommand {
	items := make([]string, 0, len(others)+1)
	for _, cmd := range others {
		items = append(items, fmt.Sprintf("`/%s`: %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, "`/help`: Show this help")
	sort.Strings(items)

	return &HelpCommand{
		commands:  items,
		formatter: NewResponseFormatter(),
	}
}

// Described is the subset of core.Command that help needs.
type Described interface {
	Name() string
	Description() string
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show this help"
}

func (c *HelpCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info("ScoutBot Commands"),
		c.formatter.List(c.commands),
		c.formatter.Tip("Anything without a leading `/` is treated as a search query over your connected chats."),
	), nil
}
