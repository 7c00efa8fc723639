package agent

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/membot/internal/core"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

// promptTokens estimates the prompt size with the cl100k_base encoding.
// Purely informational (debug logging); returns 0 when the encoding is
// unavailable rather than failing the turn.
func promptTokens(msgs []core.Message) int {
	tkOnce.Do(func() {
		t, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tk = t
	})
	if tk == nil {
		return 0
	}

	total := 0
	for _, m := range msgs {
		total += len(tk.Encode(m.Content, nil, nil))
	}
	return total
}
