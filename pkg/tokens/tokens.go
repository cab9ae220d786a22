// Package tokens counts prompt tokens so the assistant can warn before a
// request blows the model's context window.
package tokens

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	mu    sync.Mutex
	cache = map[string]*tiktoken.Tiktoken{}
)

func encoderFor(model string) (*tiktoken.Tiktoken, error) {
	mu.Lock()
	defer mu.Unlock()

	if tk, ok := cache[model]; ok {
		return tk, nil
	}

	tk, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Unknown model name; fall back to the broadest encoding.
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("load tiktoken encoder: %w", err)
		}
	}

	cache[model] = tk
	return tk, nil
}

// Count reports the token length of text under the model's encoding. The
// count feeds advisory checks only, so callers treat an encoder-load error
// as "unknown" rather than a failure of the interaction.
func Count(model, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	tk, err := encoderFor(model)
	if err != nil {
		return 0, err
	}
	return len(tk.Encode(text, nil, nil)), nil
}
