package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laborlink/internal/config"
	"laborlink/internal/database"
	"laborlink/internal/database/migration"
	dbpostgres "laborlink/internal/database/postgres"
	"laborlink/internal/database/seeder"
	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/generator"
	"laborlink/internal/infrastructure/cache"
	"laborlink/internal/metrics"
	"laborlink/internal/pkg/logging"
	"laborlink/internal/repository"
	"laborlink/internal/ws"
)

// JobStore is the job repository together with the bulk import used by
// seeding.
type JobStore interface {
	job.Repository
	Import(ctx context.Context, jobs []job.Job) error
}

// Container owns every long-lived dependency of the server.
type Container struct {
	Config  config.Config
	Logger  *logging.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Metrics
	Hub     *ws.Hub

	Jobs         JobStore
	Users        *repository.MemoryUserRepository
	Categories   *repository.MemoryCategoryRepository
	Applications application.Repository
	Profiles     *repository.MemoryProfileRepository
	Site         *repository.MemorySiteRepository
	Generator    generator.Generator
}

func NewContainer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Cache:     cache.NewRedis(cfg.Redis, logger),
		Metrics:   metrics.New(),
		Hub:       ws.NewHub(logger),
		Generator: generator.NewGeminiGenerator(cfg.Generator, logger),
	}

	var snap repository.Snapshotter
	if c.Cache.Available() {
		snap = repository.NewRedisSnapshotter(c.Cache, "")
	}

	c.Users = repository.NewMemoryUserRepository(snap, logger)
	c.Categories = repository.NewMemoryCategoryRepository(snap, logger)
	c.Profiles = repository.NewMemoryProfileRepository(snap, logger)
	c.Site = repository.NewMemorySiteRepository(snap, logger)

	switch cfg.App.StoreBackend {
	case config.StorePostgres:
		if err := c.openPostgres(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	default:
		jobs := repository.NewMemoryJobRepository(snap, logger)
		apps := repository.NewMemoryApplicationRepository(snap, logger)
		if restored, err := jobs.Restore(ctx); err != nil {
			logger.Warn("job snapshot restore failed", "err", err)
		} else if restored {
			logger.Info("jobs restored from snapshot")
		}
		if _, err := apps.Restore(ctx); err != nil {
			logger.Warn("application snapshot restore failed", "err", err)
		}
		c.Jobs = jobs
		c.Applications = apps
	}

	if _, err := c.Users.Restore(ctx); err != nil {
		logger.Warn("user snapshot restore failed", "err", err)
	}
	if _, err := c.Categories.Restore(ctx); err != nil {
		logger.Warn("category snapshot restore failed", "err", err)
	}
	if _, err := c.Profiles.Restore(ctx); err != nil {
		logger.Warn("profile snapshot restore failed", "err", err)
	}
	if _, err := c.Site.Restore(ctx); err != nil {
		logger.Warn("site snapshot restore failed", "err", err)
	}

	if err := c.seed(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) openPostgres(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	c.DB = db

	if err := (migration.Runner{Dir: c.Config.Database.MigrationsDir}).Run(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seeder.VerifySchema(ctx, db, map[string][]string{
		"jobs":         {"id", "employer_id", "posted_at", "translations"},
		"applications": {"id", "job_id", "worker_id", "status"},
	}); err != nil {
		return err
	}

	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Applications = repository.NewPostgresApplicationRepository(db)
	return nil
}

func (c *Container) seed(ctx context.Context) error {
	if c.Config.Seed.Disabled {
		return nil
	}
	f, err := seeder.Load(c.Config.Seed.File)
	if err != nil {
		return err
	}
	r := seeder.Runner{
		Seeders: seeder.Defaults(f, c.Config.Seed.DefaultPassword, c.Logger),
		Logger:  c.Logger,
	}
	return r.Run(ctx, seeder.Targets{Users: c.Users, Categories: c.Categories, Jobs: c.Jobs})
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	errs = append(errs, c.Cache.Close())
	return errors.Join(errs...)
}
