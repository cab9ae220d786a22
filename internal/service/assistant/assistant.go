// Package assistant orchestrates one full interaction: memory retrieval,
// background synthesis, the clarification dialogue, and persistence.
package assistant

import (
	"context"
	"fmt"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/service/dialog"
	"github.com/quillhq/quill/internal/service/memory"
	"github.com/quillhq/quill/pkg/log"
	"github.com/quillhq/quill/pkg/tokens"
)

// contextBudget is the context window of the legacy davinci models. Only a
// warning: the API enforces the real limit.
const contextBudget = 4097

type Assistant struct {
	client    core.CompletionClient
	embedder  core.Embedder
	repo      core.HistoryRepository
	retriever *memory.Retriever
	synth     *memory.Synthesizer
	rater     *memory.Rater
	loop      *dialog.Loop
}

func New(
	client core.CompletionClient,
	embedder core.Embedder,
	repo core.HistoryRepository,
	retriever *memory.Retriever,
	synth *memory.Synthesizer,
	rater *memory.Rater,
	loop *dialog.Loop,
) *Assistant {
	return &Assistant{
		client:    client,
		embedder:  embedder,
		repo:      repo,
		retriever: retriever,
		synth:     synth,
		rater:     rater,
		loop:      loop,
	}
}

// Options are the per-invocation sampling choices for the main interaction.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int

	// NoMemory skips retrieval and persistence for a one-off question.
	NoMemory bool
}

// Ask runs the full flow for one prompt and returns the final reply. A
// failing history store downgrades to an answer without background and
// without persistence; a failing completion call, including one made during
// background synthesis, aborts the invocation with nothing stored.
func (a *Assistant) Ask(ctx context.Context, prompt string, opts Options) (core.Completion, error) {
	logger := log.FromCtx(ctx)

	combined := prompt
	storeUsable := !opts.NoMemory

	if !opts.NoMemory {
		background, ok, err := a.buildBackground(ctx, prompt)
		if err != nil {
			return core.Completion{}, err
		}
		storeUsable = ok
		if background != "" {
			combined = memory.BackgroundPreamble + background + "\n" + prompt
		}
	}

	if count, err := tokens.Count(opts.Model, combined); err != nil {
		logger.Debug().Err(err).Msg("token counting unavailable, skipping context window check")
	} else if count+opts.MaxTokens > contextBudget {
		logger.Warn().Int("prompt_tokens", count).Int("max_tokens", opts.MaxTokens).
			Msg("prompt plus reply budget exceeds the model context window")
	}

	finalPrompt, reply, err := a.loop.Run(ctx, combined, dialog.Params{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return core.Completion{}, err
	}

	if storeUsable {
		if err := a.persist(ctx, finalPrompt, reply, opts.Model); err != nil {
			logger.Warn().Err(err).Msg("interaction will not be remembered")
		}
	}

	return reply, nil
}

// buildBackground embeds the prompt and synthesizes background from the most
// relevant history. Store and embedding failures downgrade to an empty
// background, with the ok result reporting whether the store can still be
// used for persistence. A completion failure during synthesis is not
// recoverable and is returned to abort the invocation.
func (a *Assistant) buildBackground(ctx context.Context, prompt string) (string, bool, error) {
	logger := log.FromCtx(ctx)

	queryVec, err := a.embedder.Embed(ctx, prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to embed prompt, proceeding without background")
		return "", false, nil
	}

	candidates, err := a.retriever.Retrieve(ctx, queryVec)
	if err != nil {
		logger.Warn().Err(err).Msg("history unavailable, proceeding without background")
		return "", false, nil
	}

	background, err := a.synth.Synthesize(ctx, candidates)
	if err != nil {
		return "", false, fmt.Errorf("background synthesis: %w", err)
	}

	return background, true, nil
}

// persist rates and stores the completed interaction. The record carries an
// embedding of the prompt as finally constructed, so future retrievals
// compare against exactly the text that was sent.
func (a *Assistant) persist(ctx context.Context, finalPrompt string, reply core.Completion, model string) error {
	importance, err := a.rater.Rate(ctx, finalPrompt)
	if err != nil {
		return fmt.Errorf("importance rating: %w", err)
	}

	embedding, err := a.embedder.Embed(ctx, finalPrompt)
	if err != nil {
		return fmt.Errorf("embedding final prompt: %w", err)
	}

	rec := core.HistoryRecord{
		ID:         reply.ID,
		Prompt:     finalPrompt,
		Response:   reply.Text,
		Tokens:     reply.TotalTokens,
		Model:      model,
		Finish:     reply.FinishReason,
		Importance: importance,
		Embedding:  embedding,
	}

	if err := a.repo.Insert(ctx, rec); err != nil {
		return fmt.Errorf("storing interaction: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("id", rec.ID).Int("importance", importance).Msg("interaction stored")
	return nil
}
