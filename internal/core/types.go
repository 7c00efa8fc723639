package core

import "time"

const (
	BotName          = "MemBot"
	BotRepositoryURL = "https://github.com/sandevgo/membot"
	BotVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Fact is a single key/value pair inferred from user text and persisted
// for reuse in future prompts. At most one row exists per (session, key).
type Fact struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
