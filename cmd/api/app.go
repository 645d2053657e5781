package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-calories/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-calories/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-calories/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-calories/internal/adapters/storage"
	"github.com/comitanigiacomo/kanso-calories/internal/config"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
	"github.com/comitanigiacomo/kanso-calories/internal/logger"
)

type app struct {
	router *gin.Engine
	db     *sqlx.DB
	redis  *redis.Client
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

type repositories struct {
	entries  domain.EntryRepository
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	presets  domain.PresetRepository
}

// newApp opens storage, applies migrations and wires the HTTP stack.
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{}

	repos, err := a.openRepositories(ctx, cfg, log.WithComponent("storage"))
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			// Redis only accelerates reads; run without it.
			log.Warn("redis unavailable, running without cache and rate limiting", "error", err)
		} else {
			a.redis = rdb
			cacheLog := log.WithComponent("cache")
			repos.entries = repository.NewCachedEntryRepository(repos.entries, rdb, cfg.CacheTTL, cacheLog)
			repos.weights = repository.NewCachedWeightRepository(repos.weights, rdb, cfg.CacheTTL, cacheLog)
			repos.presets = repository.NewCachedPresetRepository(repos.presets, rdb, cfg.CacheTTL, cacheLog)
			log.Info("redis connected", "host", cfg.RedisHost, "ttl", cfg.CacheTTL)
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load time zone: %w", err)
	}

	entrySvc := services.NewEntryService(repos.entries)
	weightSvc := services.NewWeightService(repos.weights)
	profileSvc := services.NewProfileService(repos.profiles)
	presetSvc := services.NewPresetService(repos.presets, entrySvc)
	dashboardSvc := services.NewDashboardService(repos.entries, repos.weights, repos.profiles, repos.presets, loc)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		EntryHandler:     adapterHTTP.NewEntryHandler(entrySvc),
		WeightHandler:    adapterHTTP.NewWeightHandler(weightSvc),
		ProfileHandler:   adapterHTTP.NewProfileHandler(profileSvc),
		PresetHandler:    adapterHTTP.NewPresetHandler(presetSvc),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardSvc),
		DB:               a.db,
		Redis:            a.redis,
		Logger:           log,
		RateLimit:        cfg.RateLimit,
		RateWindow:       cfg.RateWindow,
		StartTime:        time.Now(),
	})

	return a, nil
}

func (a *app) openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (repositories, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return repositories{
			entries:  repository.NewInMemoryEntryRepository(),
			weights:  repository.NewInMemoryWeightRepository(),
			profiles: repository.NewInMemoryProfileRepository(),
			presets:  repository.NewInMemoryPresetRepository(),
		}, nil

	case config.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.SQLiteDBPath)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		if err := storage.MigrateSQLite(db); err != nil {
			return repositories{}, err
		}
		log.Info("sqlite ready", "path", cfg.SQLiteDBPath)

	default:
		dsn := cfg.PostgresDSN()
		log.Info("connecting to postgres", "host", cfg.DBHost, "database", cfg.DBName)
		db, err := storage.OpenPostgres(ctx, dsn)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		if err := storage.MigratePostgres(dsn); err != nil {
			return repositories{}, err
		}
		log.Info("postgres ready")
	}

	return repositories{
		entries:  repository.NewSQLEntryRepository(a.db),
		weights:  repository.NewSQLWeightRepository(a.db),
		profiles: repository.NewSQLProfileRepository(a.db),
		presets:  repository.NewSQLPresetRepository(a.db),
	}, nil
}
