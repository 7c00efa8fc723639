//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/internal/storage/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable Postgres; set the standard PG* variables, e.g.:
//
//	PGHOST=127.0.0.1 PGUSER=membot PGPASSWORD=membot PGDATABASE=membot \
//	  go test -tags integration ./test/integration/
func openTestDB(t *testing.T) *sql.DB {
	host := os.Getenv("PGHOST")
	if host == "" {
		t.Skip("PGHOST not set, skipping Postgres integration test")
	}
	port := os.Getenv("PGPORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		os.Getenv("PGUSER"), os.Getenv("PGPASSWORD"), host, port, os.Getenv("PGDATABASE"))

	db, err := postgres.NewDB(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestConversationRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewMessagesRepo(db)
	ctx := context.Background()
	session := "it-" + uuid.NewString()

	turns := []core.Message{
		{Role: core.RoleUser, Content: "first"},
		{Role: core.RoleAssistant, Content: "second"},
		{Role: core.RoleUser, Content: "third"},
	}
	for _, msg := range turns {
		require.NoError(t, repo.AddMessage(ctx, session, msg))
	}

	got, err := repo.GetMessages(ctx, session, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// last two turns, oldest first
	assert.Equal(t, "second", got[0].Content)
	assert.Equal(t, "third", got[1].Content)

	all, err := repo.GetMessages(ctx, session, 10)
	require.NoError(t, err)
	assert.Equal(t, turns, all)
}

func TestFactUpsertOverwrites(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewFactsRepo(db)
	ctx := context.Background()
	session := "it-" + uuid.NewString()

	require.NoError(t, repo.UpsertFact(ctx, session, "location", "Boston"))
	require.NoError(t, repo.UpsertFact(ctx, session, "name", "Sam"))
	require.NoError(t, repo.UpsertFact(ctx, session, "location", "Denver"))

	facts, err := repo.GetFacts(ctx, session)
	require.NoError(t, err)
	require.Len(t, facts, 2)

	// overwrite keeps the original row, so insertion order is stable
	assert.Equal(t, "location", facts[0].Key)
	assert.Equal(t, "Denver", facts[0].Value)
	assert.Equal(t, "name", facts[1].Key)
	assert.Equal(t, "Sam", facts[1].Value)
}

func TestFactsIsolatedBySession(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewFactsRepo(db)
	ctx := context.Background()

	a := "it-" + uuid.NewString()
	b := "it-" + uuid.NewString()
	require.NoError(t, repo.UpsertFact(ctx, a, "name", "Alice"))

	facts, err := repo.GetFacts(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, facts)
}
