package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/providers/embedding"
	"github.com/quillhq/quill/internal/providers/llm"
	"github.com/quillhq/quill/internal/service/assistant"
	"github.com/quillhq/quill/internal/service/dialog"
	"github.com/quillhq/quill/internal/service/memory"
	"github.com/quillhq/quill/internal/storage/sqlite"
	"github.com/quillhq/quill/pkg/log"
)

// deps bundles everything a subcommand needs after wiring: configuration,
// the open database, and the fully assembled assistant.
type deps struct {
	appCfg    *config.AppConfig
	db        *sql.DB
	repo      core.HistoryRepository
	assistant *assistant.Assistant
}

// newDeps loads configuration, opens storage and builds the assistant. The
// input reader is what blocks for operator answers during clarification
// rounds, so each transport passes its own.
func newDeps(ctx context.Context, input dialog.InputReader) (*deps, error) {
	logger := log.FromCtx(ctx)

	runtimePath := config.GetRuntimePath()
	if err := initEnv(ctx, runtimePath); err != nil {
		return nil, err
	}

	appCfg := config.NewAppConfig(ctx)
	appCfg.RuntimePath = runtimePath
	memCfg := config.NewMemoryConfig(ctx)
	openaiCfg := config.NewOpenAIConfig(ctx)

	// An unreachable store never blocks the main flow: fall back to a repo
	// that reports it unavailable, so retrieval and persistence degrade the
	// same way they do on a query-time failure.
	var repo core.HistoryRepository
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Warn().Err(err).Msg("history store unavailable, continuing without memory")
		repo = sqlite.NewUnavailable(err)
	} else {
		repo = sqlite.NewHistory(db)
	}

	client := llm.NewOpenAI(openaiCfg)
	embedder := embedding.NewOpenAI(openaiCfg, memCfg.EmbeddingModel)

	as := assistant.New(
		client,
		embedder,
		repo,
		memory.NewRetriever(repo),
		memory.NewSynthesizer(client, memCfg.SummaryModel, memCfg.SummarizeResponses),
		memory.NewRater(client, memCfg.ClassifierModel),
		dialog.NewLoop(client, input, memCfg.ClassifierModel),
	)

	logger.Debug().Str("runtime_path", runtimePath).Str("model", appCfg.Model).Msg("assistant assembled")

	return &deps{
		appCfg:    appCfg,
		db:        db,
		repo:      repo,
		assistant: as,
	}, nil
}

// Close releases the database if it was opened. Safe when the store never
// came up.
func (d *deps) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
