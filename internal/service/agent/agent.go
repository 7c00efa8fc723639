package agent

import (
	"context"
	"fmt"

	"github.com/sandevgo/membot/internal/config"
	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/internal/service/memory"
	"github.com/sandevgo/membot/pkg/log"
)

type Agent struct {
	appCfg    *config.AppConfig
	ai        core.AIProvider
	messages  core.MessagesRepository
	facts     core.FactsRepository
	extractor core.FactExtractor
}

func NewAgent(
	appCfg *config.AppConfig,
	ai core.AIProvider,
	messages core.MessagesRepository,
	facts core.FactsRepository,
	extractor core.FactExtractor,
) *Agent {
	return &Agent{
		appCfg:    appCfg,
		ai:        ai,
		messages:  messages,
		facts:     facts,
		extractor: extractor,
	}
}

// Run produces one assistant reply for one user turn.
//
// History is read before the user turn is appended, so the incoming
// utterance appears in the prompt exactly once (as the final message).
// Side effects applied before a failure (stored facts, the logged user
// turn) are not rolled back.
func (a *Agent) Run(ctx context.Context, sessionID, input string) (string, error) {
	logger := log.FromCtx(ctx)

	if err := a.extractor.Extract(ctx, sessionID, input); err != nil {
		return "", fmt.Errorf("failed to extract facts: %w", err)
	}

	facts, err := a.facts.GetFacts(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load facts: %w", err)
	}

	history, err := a.messages.GetMessages(ctx, sessionID, a.appCfg.HistoryWindowSize)
	if err != nil {
		return "", fmt.Errorf("failed to fetch history: %w", err)
	}

	userMsg := core.Message{Role: core.RoleUser, Content: input}
	if err := a.messages.AddMessage(ctx, sessionID, userMsg); err != nil {
		return "", fmt.Errorf("failed to save user message: %w", err)
	}

	prompt := make([]core.Message, 0, len(history)+2)
	prompt = append(prompt, memory.SystemPrompt(facts))
	prompt = append(prompt, history...)
	prompt = append(prompt, userMsg)

	logger.Debug().
		Int("messages", len(prompt)).
		Int("tokens", promptTokens(prompt)).
		Msg("assembled prompt")

	responseMsg, err := a.ai.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("ai chat error: %w", err)
	}

	responseMsg.Role = core.RoleAssistant
	if err := a.messages.AddMessage(ctx, sessionID, responseMsg); err != nil {
		return "", fmt.Errorf("failed to save assistant message: %w", err)
	}

	return responseMsg.Content, nil
}
