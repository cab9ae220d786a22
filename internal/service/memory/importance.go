package memory

import (
	"context"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/pkg/log"
	"github.com/quillhq/quill/pkg/parse"
)

const (
	importanceTemperature = 0.2
	importanceMaxTokens   = 8

	// defaultImportance is the deterministic fallback when the rating reply
	// contains no number. Completion failures still propagate; only parse
	// failures default.
	defaultImportance = 5
)

// Rater obtains a 1-10 importance rating for a prompt from a model call.
type Rater struct {
	client core.CompletionClient
	model  string
}

func NewRater(client core.CompletionClient, model string) *Rater {
	return &Rater{client: client, model: model}
}

func (r *Rater) Rate(ctx context.Context, prompt string) (int, error) {
	resp, err := r.client.Complete(ctx, core.CompletionRequest{
		Prompt:      importancePrompt + prompt,
		Model:       r.model,
		Temperature: importanceTemperature,
		MaxTokens:   importanceMaxTokens,
	})
	if err != nil {
		return 0, err
	}

	rating, ok := parse.LeadingInt(resp.Text)
	if !ok {
		log.FromCtx(ctx).Info().Str("reply", resp.Text).Msg("importance reply had no number, using default")
		return defaultImportance, nil
	}

	if rating < 1 {
		rating = 1
	}
	if rating > 10 {
		rating = 10
	}
	return rating, nil
}
