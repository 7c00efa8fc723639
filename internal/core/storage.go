package core

import "context"

type MessagesRepository interface {
	AddMessage(ctx context.Context, sessionID string, msg Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)
}

type FactsRepository interface {
	UpsertFact(ctx context.Context, sessionID, key, value string) error
	GetFacts(ctx context.Context, sessionID string) ([]Fact, error)
}
