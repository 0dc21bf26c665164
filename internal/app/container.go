package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"linktern/internal/config"
	"linktern/internal/database"
	"linktern/internal/database/migration"
	dbpostgres "linktern/internal/database/postgres"
	"linktern/internal/database/seeder"
	"linktern/internal/delivery/http/handler"
	"linktern/internal/delivery/http/middleware"
	"linktern/internal/delivery/http/routes"
	"linktern/internal/infrastructure/cache"
	dirpostgres "linktern/internal/infrastructure/directory/postgres"
	"linktern/internal/pkg/jwt"
	"linktern/internal/repository"
	"linktern/internal/usecase"
	"linktern/internal/ws"
	migrations "linktern/migrations/postgres"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes *routes.Registry
	ErrMw  *middleware.ErrorMiddleware
	LogMw  *middleware.AccessLogMiddleware
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := (migration.Runner{FS: migrations.FS}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	redisCache := cache.NewRedis(cfg.Redis, logger)

	if cfg.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		// Fresh listings invalidate any cached search pages.
		if err := redisCache.DeleteByPattern(ctx, "internships:search:*"); err != nil {
			logger.Printf("[Seed] cache invalidation failed: %v", err)
		}
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	dir := dirpostgres.NewDirectory(db, jwtSvc, logger)

	internshipRepo := repository.NewPostgresInternshipRepository(db)
	savedRepo := repository.NewPostgresSavedInternshipRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	provisionUC := usecase.NewProvisionUsecase(dir, logger)
	sessionUC := usecase.NewSessionUsecase(dir, dir, jwtSvc, logger)
	internshipUC := usecase.NewInternshipUsecase(internshipRepo, redisCache, logger)
	savedUC := usecase.NewSavedInternshipUsecase(savedRepo, internshipRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, internshipRepo, notifier, logger)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	registry := &routes.Registry{
		Health:       handler.NewHealthHandler(db, redisCache),
		Auth:         handler.NewAuthHandler(provisionUC, sessionUC),
		Profile:      handler.NewProfileHandler(sessionUC),
		Internships:  handler.NewInternshipHandler(internshipUC, savedUC),
		Applications: handler.NewApplicationHandler(applicationUC),
		WS:           ws.NewHandler(hub, logger),
		AuthMw:       authMw,
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
		ErrMw:  middleware.NewErrorMiddleware(logger),
		LogMw:  middleware.NewAccessLogMiddleware(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
