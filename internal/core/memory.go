package core

import "context"

// FactExtractor derives durable user facts from a raw utterance and
// persists them. Implementations decide what counts as a fact; the
// interface exists so the trigger-phrase matcher can be swapped for a
// real parser without touching the chat flow.
type FactExtractor interface {
	Extract(ctx context.Context, sessionID, input string) error
}
