package command

import (
	"github.com/sandevgo/scoutbot/internal/core"
)

func NewCommands(
	conns core.ConnectionManager,
	store core.HistoryRepository,
) []core.Command {
	cmds := []core.Command{
		NewSetupCommand(),
		NewConnectCommand(conns),
		NewDisconnectCommand(conns),
		NewStatusCommand(conns, store),
		NewListCommand(conns, store),
	}

	described := make([]Described, len(cmds))
	for i, cmd := range cmds {
		described[i] = cmd
	}
	return append(cmds, NewHelpCommand(described))
}
