package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/membot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequestAndResponse(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer server.Close()

	p := NewCustomOpenAI(server.URL, "secret", "test-model")
	msg, err := p.Chat(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "No known facts about the user."},
		{Role: core.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotPayload["model"])
	assert.Equal(t, float64(0), gotPayload["temperature"])

	messages, ok := gotPayload["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)

	assert.Equal(t, core.RoleAssistant, msg.Role)
	assert.Equal(t, "hello", msg.Content)
}

func TestChatHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewCustomOpenAI(server.URL, "secret", "test-model")
	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 429")
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p := NewCustomOpenAI(server.URL, "", "test-model")
	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}
