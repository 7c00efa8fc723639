package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/membot/internal/config"
	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, provider string) (core.AIProvider, error) {
	switch provider {
	case "openai":
		cfg := config.NewOpenAIConfig(ctx)
		log.FromCtx(ctx).Info().
			Str("provider", provider).
			Str("model", cfg.Model).
			Msg("starting llm provider")
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case "custom":
		cfg := config.NewCustomOpenAIConfig(ctx)
		log.FromCtx(ctx).Info().
			Str("provider", provider).
			Str("model", cfg.Model).
			Msg("starting llm provider")
		return NewCustomOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
