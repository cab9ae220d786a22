package memory

import (
	"context"
	"strings"

	"github.com/quillhq/quill/internal/core"
	"golang.org/x/sync/errgroup"
)

const (
	summaryTemperature = 0.5
	summaryMaxTokens   = 300
)

// Synthesizer condenses selected records into a single background block
// using a cheaper model variant than the main interaction.
type Synthesizer struct {
	client core.CompletionClient
	model  string

	// includeResponses feeds the record's response text to the summarizer
	// alongside its prompt text. Off by default: summaries of the operator's
	// own questions transfer better across conversations than summaries of
	// old answers.
	includeResponses bool
}

func NewSynthesizer(client core.CompletionClient, model string, includeResponses bool) *Synthesizer {
	return &Synthesizer{
		client:           client,
		model:            model,
		includeResponses: includeResponses,
	}
}

// Synthesize summarizes each candidate and concatenates the summaries in
// rank order beneath the background header, with no separator between them.
// The summarization calls run concurrently; ordering of the output is by
// rank, never by completion time. Zero candidates yield just the header.
func (s *Synthesizer) Synthesize(ctx context.Context, candidates []core.ScoredCandidate) (string, error) {
	summaries := make([]string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, cand := range candidates {
		g.Go(func() error {
			resp, err := s.client.Complete(gctx, core.CompletionRequest{
				Prompt:      summaryPrompt + s.summaryInput(cand),
				Model:       s.model,
				Temperature: summaryTemperature,
				MaxTokens:   summaryMaxTokens,
			})
			if err != nil {
				return err
			}
			summaries[i] = resp.Text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(BackgroundHeader)
	for _, summary := range summaries {
		sb.WriteString(summary)
	}
	return sb.String(), nil
}

func (s *Synthesizer) summaryInput(cand core.ScoredCandidate) string {
	if s.includeResponses {
		return cand.Prompt + "\n" + cand.Response
	}
	return cand.Prompt
}
