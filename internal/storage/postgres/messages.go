package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/pkg/log"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) AddMessage(ctx context.Context, sessionID string, msg core.Message) error {
	query := `INSERT INTO conversations (session_id, role, content) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, sessionID, msg.Role, msg.Content)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessagesRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]core.Message, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Fetch the LAST 'limit' messages by ordering DESC
	query := `SELECT role, content FROM conversations WHERE session_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.Message
	for rows.Next() {
		var msg core.Message
		var content sql.NullString

		// Use NullString to safely handle potential NULLs in DB
		if err := rows.Scan(&msg.Role, &content); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		msg.Content = content.String
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returned messages in Reverse Chronological Order (Newest -> Oldest).
	// We need to reverse them back to Chronological Order (Oldest -> Newest) for the LLM.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded history messages")
	return messages, nil
}
