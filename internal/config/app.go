package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/membot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"MEMBOT_RUNTIME_PATH" envDefault:".membot"`
	// Allow selecting the provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// All conversation and fact rows are grouped under this identifier.
	// The CLI runs a single fixed session; pointing this at another value
	// is all it takes to start a fresh one.
	SessionID string `env:"MEMBOT_SESSION_ID" envDefault:"cli-local"`

	// Context Management
	HistoryWindowSize int `env:"HISTORY_WINDOW_SIZE" envDefault:"5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
