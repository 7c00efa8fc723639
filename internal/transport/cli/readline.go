package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/membot/internal/config"
	"github.com/sandevgo/membot/internal/service/agent"
	"github.com/sandevgo/membot/internal/service/ui"
	"github.com/sandevgo/membot/pkg/log"
)

type ReadLine struct {
	cfg   *config.AppConfig
	agent *agent.Agent
	rl    *readline.Instance
	stop  context.CancelFunc
}

func NewReadLine(ag *agent.Agent, cfg *config.AppConfig, stop context.CancelFunc) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:   cfg,
		agent: ag,
		rl:    rl,
		stop:  stop,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("session", r.cfg.SessionID).Msg("chat started, type 'exit' to quit")

	// Typing 'exit' cancels the root context so the service group shuts
	// down instead of leaving the process hanging on the signal wait.
	defer r.stop()

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
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
		if strings.EqualFold(line, "exit") {
			return nil
		}
		if line == "" {
			continue
		}

		reply, err := r.agent.Run(ctx, r.cfg.SessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s %s\n", ui.BotLabelStyle.Render("Bot:"), reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
