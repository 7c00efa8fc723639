package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/pkg/log"
)

type FactsRepo struct {
	db *sql.DB
}

func NewFactsRepo(db *sql.DB) *FactsRepo {
	return &FactsRepo{db: db}
}

// UpsertFact inserts or overwrites the value for (session, key) in a
// single statement. The unique index on (session_id, fact_key) makes
// this safe against concurrent writers racing on the same key.
func (r *FactsRepo) UpsertFact(ctx context.Context, sessionID, key, value string) error {
	query := `INSERT INTO user_facts (session_id, fact_key, fact_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, fact_key)
		DO UPDATE SET fact_value = EXCLUDED.fact_value, updated_at = now()`

	_, err := r.db.ExecContext(ctx, query, sessionID, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert fact %q: %w", key, err)
	}

	log.FromCtx(ctx).Debug().Str("key", key).Msg("stored user fact")
	return nil
}

// GetFacts returns all facts for a session in insertion order.
func (r *FactsRepo) GetFacts(ctx context.Context, sessionID string) ([]core.Fact, error) {
	query := `SELECT id, session_id, fact_key, fact_value, updated_at
		FROM user_facts WHERE session_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts: %w", err)
	}
	defer rows.Close()

	var facts []core.Fact
	for rows.Next() {
		var f core.Fact
		var value sql.NullString

		if err := rows.Scan(&f.ID, &f.SessionID, &f.Key, &value, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fact: %w", err)
		}

		f.Value = value.String
		facts = append(facts, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return facts, nil
}
