package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookleaf-royalty/internal/config"
	"bookleaf-royalty/internal/infrastructure/database"

	authorHandler "bookleaf-royalty/internal/domains/author/handler"
	authorRepo "bookleaf-royalty/internal/domains/author/repository"
	authorService "bookleaf-royalty/internal/domains/author/service"
	withdrawalHandler "bookleaf-royalty/internal/domains/withdrawal/handler"
	withdrawalRepo "bookleaf-royalty/internal/domains/withdrawal/repository"
	withdrawalService "bookleaf-royalty/internal/domains/withdrawal/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the application lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo     authorRepo.RepositoryInterface
	WithdrawalRepo withdrawalRepo.RepositoryInterface

	RoyaltyService    authorService.ServiceInterface
	WithdrawalService withdrawalService.ServiceInterface

	AuthorHandler     *authorHandler.AuthorHandler
	WithdrawalHandler *withdrawalHandler.WithdrawalHandler
}

// NewContainer builds the dependency graph in order: config, database
// (schema + seed), repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	if err := database.Seed(ctx, db.Pool); err != nil {
		// The API still works with whatever data is present.
		log.Error().Err(err).Msg("Seeding failed")
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.WithdrawalRepo = withdrawalRepo.NewPostgresRepository(db.Pool)

	c.RoyaltyService = authorService.NewRoyaltyService(c.AuthorRepo)
	c.WithdrawalService = withdrawalService.NewWithdrawalService(c.WithdrawalRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.RoyaltyService)
	c.WithdrawalHandler = withdrawalHandler.NewWithdrawalHandler(c.WithdrawalService)

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases held resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
