package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/quillhq/quill/pkg/log"
)

type OpenAIConfig struct {
	APIKey  string `env:"QUILL_OPENAI_API_KEY,required,notEmpty"`
	Org     string `env:"QUILL_OPENAI_ORG"`
	BaseURL string `env:"QUILL_OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
