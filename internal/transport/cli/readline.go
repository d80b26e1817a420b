package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/scoutbot/internal/config"
	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/internal/service/finder"
	"github.com/sandevgo/scoutbot/pkg/log"
)

const localUserID = "cli-local"

// ReadLine is a local query console, mostly useful while developing: same
// command router and finder as the Telegram surface, no bot token needed.
type ReadLine struct {
	cfg    *config.AppConfig
	router core.CmdRouter
	finder *finder.Finder
	rl     *readline.Instance
}

func NewReadLine(cfg *config.AppConfig, router core.CmdRouter, fnd *finder.Finder) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		router: router,
		finder: fnd,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("query console started. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply, handled := r.router.Execute(ctx, localUserID, line)
		if !handled {
			reply = r.finder.Run(ctx, localUserID, line)
		}
		fmt.Println(reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	return r.rl.Close()
}
