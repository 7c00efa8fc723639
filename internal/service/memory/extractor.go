package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/pkg/log"
)

// trigger binds a phrase to the fact key it populates and the rule that
// carves the value out of the text following the phrase.
type trigger struct {
	phrase  string
	key     string
	capture func(rest string) string
}

// Triggers are checked in order against the lower-cased utterance; the
// value is taken from the original text so casing survives. "moved to"
// runs after "i live in" so it wins when both match in one utterance.
var triggers = []trigger{
	{phrase: "my name is", key: "name", capture: firstToken},
	{phrase: "i am a", key: "profession", capture: untilPeriod},
	{phrase: "i live in", key: "location", capture: untilPeriod},
	{phrase: "moved to", key: "location", capture: untilPeriod},
}

// TriggerExtractor scans user utterances for a fixed set of phrase
// triggers and upserts the derived key/value pairs. It implements
// core.FactExtractor.
type TriggerExtractor struct {
	facts core.FactsRepository
}

func NewTriggerExtractor(facts core.FactsRepository) *TriggerExtractor {
	return &TriggerExtractor{facts: facts}
}

func (e *TriggerExtractor) Extract(ctx context.Context, sessionID, input string) error {
	logger := log.FromCtx(ctx)
	lower := strings.ToLower(input)

	for _, t := range triggers {
		idx := strings.LastIndex(lower, t.phrase)
		if idx == -1 {
			continue
		}

		// A matched trigger always writes, even when the captured value
		// is empty.
		value := t.capture(input[idx+len(t.phrase):])
		if err := e.facts.UpsertFact(ctx, sessionID, t.key, value); err != nil {
			return fmt.Errorf("failed to store fact %q: %w", t.key, err)
		}

		logger.Debug().Str("key", t.key).Msg("fact extracted")
	}

	return nil
}

// untilPeriod returns the text up to (not including) the first period,
// trimmed of surrounding whitespace.
func untilPeriod(rest string) string {
	if i := strings.Index(rest, "."); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// firstToken returns the first whitespace-delimited token before the
// first period, or "" when nothing follows the phrase.
func firstToken(rest string) string {
	fields := strings.Fields(untilPeriod(rest))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
