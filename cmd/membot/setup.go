package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/membot/internal/config"
	"github.com/sandevgo/membot/internal/core"
	"github.com/sandevgo/membot/internal/providers/llm"
	"github.com/sandevgo/membot/internal/service/agent"
	"github.com/sandevgo/membot/internal/service/memory"
	"github.com/sandevgo/membot/internal/storage/postgres"
	"github.com/sandevgo/membot/internal/transport/cli"
	"github.com/sandevgo/membot/pkg/log"
	"github.com/sandevgo/membot/pkg/srv"
)

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, messagesRepo, factsRepo, err := initStorage(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, appCfg.LLMProvider)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Fact Extraction
	extractor := memory.NewTriggerExtractor(factsRepo)

	// 5. Agent Service
	ag := agent.NewAgent(appCfg, aiProvider, messagesRepo, factsRepo, extractor)

	// 6. Transport
	rl, err := cli.NewReadLine(ag, appCfg, stop)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize CLI transport")
	}
	services = append(services, rl)

	return services
}

func initStorage(ctx context.Context) (*sql.DB, core.MessagesRepository, core.FactsRepository, error) {
	pgCfg := config.NewPostgresConfig(ctx)

	db, err := postgres.NewDB(ctx, pgCfg.DSN())
	if err != nil {
		return nil, nil, nil, err
	}
	return db, postgres.NewMessagesRepo(db), postgres.NewFactsRepo(db), nil
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
