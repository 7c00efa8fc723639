package memory

import (
	"context"
	"reflect"
	"testing"

	"github.com/sandevgo/membot/internal/core"
)

// factsStub records upserts in order and applies overwrite semantics.
type factsStub struct {
	order []string
	vals  map[string]string
}

func newFactsStub() *factsStub {
	return &factsStub{vals: make(map[string]string)}
}

func (s *factsStub) UpsertFact(ctx context.Context, sessionID, key, value string) error {
	if _, ok := s.vals[key]; !ok {
		s.order = append(s.order, key)
	}
	s.vals[key] = value
	return nil
}

func (s *factsStub) GetFacts(ctx context.Context, sessionID string) ([]core.Fact, error) {
	facts := make([]core.Fact, 0, len(s.order))
	for _, k := range s.order {
		facts = append(facts, core.Fact{SessionID: sessionID, Key: k, Value: s.vals[k]})
	}
	return facts, nil
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		seed     map[string]string
		input    string
		expected map[string]string
	}{
		{
			name:     "name and location in one utterance",
			input:    "Hi, my name is Alice and I live in Boston.",
			expected: map[string]string{"name": "Alice", "location": "Boston"},
		},
		{
			name:     "moved to updates a prior location",
			seed:     map[string]string{"location": "Boston"},
			input:    "I moved to Denver.",
			expected: map[string]string{"location": "Denver"},
		},
		{
			name:     "case insensitive match keeps original value case",
			input:    "My name is Sam.",
			expected: map[string]string{"name": "Sam"},
		},
		{
			name:     "profession up to first period",
			input:    "i am a software engineer. Nice to meet you.",
			expected: map[string]string{"profession": "software engineer"},
		},
		{
			name:     "moved to wins over i live in",
			input:    "I live in Boston but moved to Denver today",
			expected: map[string]string{"location": "Denver today"},
		},
		{
			name:     "last occurrence of the phrase is used",
			input:    "my name is Bob. Actually my name is Rob.",
			expected: map[string]string{"name": "Rob"},
		},
		{
			name:     "matched trigger with nothing after stores empty value",
			input:    "my name is",
			expected: map[string]string{"name": ""},
		},
		{
			name:     "no triggers leaves the store unchanged",
			seed:     map[string]string{"name": "Sam"},
			input:    "What is the weather like today?",
			expected: map[string]string{"name": "Sam"},
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := newFactsStub()
			for k, v := range tt.seed {
				facts.vals[k] = v
				facts.order = append(facts.order, k)
			}

			e := NewTriggerExtractor(facts)
			if err := e.Extract(ctx, "test-session", tt.input); err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			if !reflect.DeepEqual(facts.vals, tt.expected) {
				t.Errorf("facts = %v, want %v", facts.vals, tt.expected)
			}
		})
	}
}

func TestCaptureHelpers(t *testing.T) {
	if got := untilPeriod(" Boston. More text"); got != "Boston" {
		t.Errorf("untilPeriod() = %q, want %q", got, "Boston")
	}
	if got := untilPeriod("  no period here "); got != "no period here" {
		t.Errorf("untilPeriod() = %q, want %q", got, "no period here")
	}
	if got := firstToken(" Alice and more"); got != "Alice" {
		t.Errorf("firstToken() = %q, want %q", got, "Alice")
	}
	if got := firstToken("   "); got != "" {
		t.Errorf("firstToken() = %q, want empty", got)
	}
}
