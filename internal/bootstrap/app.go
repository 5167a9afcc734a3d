package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"product-describer/internal/descriptions"
	"product-describer/internal/drafts"
	"product-describer/internal/services/health"
	"product-describer/internal/shared/config"
	"product-describer/internal/shared/server"
	"product-describer/internal/shared/storage/cache"
	"product-describer/internal/shared/storage/db"
	"product-describer/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	DB                  *sql.DB
	Redis               *redis.Client
	DraftsRepo          drafts.Repo
	DraftsService       *drafts.Service
	DescriptionsService *descriptions.Service
	DescriptionsHandler *descriptions.Handler
	DraftsHandler       *drafts.Handler
	Health              *health.Service
}

// Build connects the configured draft store and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.DraftStore) == "" {
		cfg.DraftStore = config.DraftStoreMemory
	}

	app := &App{Config: cfg, Health: health.NewService()}

	if err := buildStore(ctx, app); err != nil {
		return nil, err
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		DescriptionsHandler: app.DescriptionsHandler,
		DraftsHandler:       app.DraftsHandler,
		Health:              app.Health,
	})
	return app, nil
}

// Close releases store connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}

func buildStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.DraftStore {
	case config.DraftStorePostgres:
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return err
		}
		if sqlDB == nil {
			return useMemory(app, "database unavailable")
		}
		app.DB = sqlDB
		app.DraftsRepo = &drafts.PGRepo{DB: sqlDB}
		app.Health.Register("database", sqlDB.PingContext)
	case config.DraftStoreRedis:
		client, err := cache.Connect(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			if isDevLike(cfg.Env) {
				telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"error": err.Error()})
				return useMemory(app, "redis unavailable")
			}
			return err
		}
		app.Redis = client
		app.DraftsRepo = &drafts.RedisRepo{Client: client, TTL: cfg.DraftTTL}
		app.Health.Register("redis", func(ctx context.Context) error { return client.Ping(ctx).Err() })
	default:
		return useMemory(app, "configured")
	}
	return nil
}

func useMemory(app *App, reason string) error {
	telemetry.Info("bootstrap.drafts_in_memory", map[string]any{"reason": reason})
	app.Config.DraftStore = config.DraftStoreMemory
	app.DraftsRepo = drafts.NewMemoryRepo()
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_url_empty", nil)
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres draft store")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_connect_failed", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	if app.DraftsRepo == nil {
		return errors.New("draft store not initialized")
	}
	app.DraftsService = drafts.NewService(app.DraftsRepo, app.Config.DraftStore)
	app.DescriptionsService = descriptions.NewService(
		app.Config.Categories,
		app.DraftsService,
		app.Config.GenerationDelay,
	)
	app.DescriptionsHandler = descriptions.NewHandler(app.DescriptionsService)
	app.DraftsHandler = drafts.NewHandler(app.DraftsService)
	return nil
}
