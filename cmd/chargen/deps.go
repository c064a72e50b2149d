package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/chargen/internal/application/handlers"
	"github.com/ersonp/chargen/internal/domain/services"
	"github.com/ersonp/chargen/internal/infrastructure/config"
	"github.com/ersonp/chargen/internal/infrastructure/logging"
	"github.com/ersonp/chargen/internal/infrastructure/relationaldb/sqlstore"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config          *config.Config
	Logger          *zap.Logger
	InitHandler     *handlers.InitHandler
	ImportHandler   *handlers.ImportHandler
	GenerateHandler *handlers.GenerateHandler
	ListHandler     *handlers.ListHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	repo *sqlstore.Repository
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including the repository.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	genders, err := cfg.Generation.GenderSet()
	if err != nil {
		return fmt.Errorf("reading genders: %w", err)
	}

	repo, err := sqlstore.NewRepository(cfg.Database, genders)
	if err != nil {
		return fmt.Errorf("creating repository: %w", err)
	}
	defer repo.Close()

	// Ensure schema exists
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	generationService := services.NewGenerationService(repo, logger)
	listingService := services.NewListingService(repo)
	importService := services.NewImportService(repo, genders, logger)

	deps := &internalDeps{
		Deps: Deps{
			Config:          cfg,
			Logger:          logger,
			InitHandler:     handlers.NewInitHandler(repo),
			ImportHandler:   handlers.NewImportHandler(importService),
			GenerateHandler: handlers.NewGenerateHandler(generationService, defaultRequest(cfg.Generation)),
			ListHandler:     handlers.NewListHandler(listingService),
		},
		repo: repo,
	}

	return fn(deps)
}

// defaultRequest maps configured quantities onto a generation request.
func defaultRequest(cfg config.GenerationConfig) services.GenerationRequest {
	req := services.DefaultGenerationRequest()
	req.PositiveFeatures = cfg.PositiveFeatures
	req.NegativeFeatures = cfg.NegativeFeatures
	req.Items = cfg.Items
	return req
}

func configPath() string {
	if globalConfig != "" {
		return globalConfig
	}
	return config.DefaultConfigFile
}
