package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/quillhq/quill/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"QUILL_RUNTIME_PATH" envDefault:".quill"`

	// Sampling defaults for the main interaction. Flags override these.
	Model       string  `env:"QUILL_MODEL" envDefault:"text-davinci-003"`
	Temperature float64 `env:"QUILL_TEMPERATURE" envDefault:"0.9"`
	MaxTokens   int     `env:"QUILL_MAX_TOKENS" envDefault:"1000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "quill.db")
}
