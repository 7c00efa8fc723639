package memory

import (
	"strings"
	"unicode"

	"github.com/sandevgo/membot/internal/core"
)

const noFactsPrompt = "No known facts about the user."

// SystemPrompt renders the stored facts into the single system message
// that opens every completion request. Keys are capitalized for display;
// ordering follows the store (insertion order).
func SystemPrompt(facts []core.Fact) core.Message {
	if len(facts) == 0 {
		return core.Message{Role: core.RoleSystem, Content: noFactsPrompt}
	}

	pairs := make([]string, 0, len(facts))
	for _, f := range facts {
		pairs = append(pairs, capitalize(f.Key)+" = "+f.Value)
	}

	return core.Message{
		Role:    core.RoleSystem,
		Content: "User facts: " + strings.Join(pairs, ", "),
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
