package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/quillhq/quill/pkg/log"
)

type MemoryConfig struct {
	// SummaryModel is the cheaper variant used for background summaries.
	SummaryModel string `env:"QUILL_SUMMARY_MODEL" envDefault:"text-curie-001"`

	// ClassifierModel handles classification and importance rating. It is
	// always the highest-capability variant regardless of the main model.
	ClassifierModel string `env:"QUILL_CLASSIFIER_MODEL" envDefault:"text-davinci-003"`

	EmbeddingModel string `env:"QUILL_EMBEDDING_MODEL" envDefault:"text-embedding-ada-002"`

	// SummarizeResponses controls whether a record's response text is fed to
	// the summarizer alongside its prompt text.
	SummarizeResponses bool `env:"QUILL_SUMMARIZE_RESPONSES" envDefault:"false"`
}

func NewMemoryConfig(ctx context.Context) *MemoryConfig {
	c := &MemoryConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Memory config")
	}
	return c
}
