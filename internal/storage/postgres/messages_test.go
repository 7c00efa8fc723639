package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessagesNonPositiveLimit(t *testing.T) {
	// A zero or negative limit never reaches the database.
	r := NewMessagesRepo(nil)

	for _, limit := range []int{0, -1} {
		msgs, err := r.GetMessages(context.Background(), "s", limit)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	}
}
