// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	planapp "github.com/nutriplan/v2/internal/application/plan"
	"github.com/nutriplan/v2/internal/infrastructure/config"
	"github.com/nutriplan/v2/internal/infrastructure/http/apiserver"
	"github.com/nutriplan/v2/internal/infrastructure/monitoring"
	gormRepo "github.com/nutriplan/v2/internal/infrastructure/persistence/gorm"
	"github.com/nutriplan/v2/internal/infrastructure/persistence/memory"
	"github.com/nutriplan/v2/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/nutriplan/v2/internal/infrastructure/persistence/redis"
	"github.com/nutriplan/v2/internal/infrastructure/persistence/sqlite"
	"github.com/nutriplan/v2/internal/ports/inbound"
	"github.com/nutriplan/v2/internal/ports/outbound"
	"github.com/nutriplan/v2/pkg/healthcheck"
	"github.com/nutriplan/v2/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// Monitoring modules
	MonitoringModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	// Provide sugared logger
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the database connection selected by configuration
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		switch cfg.Database.Driver {
		case "postgres":
			db, err := postgres.SetupDatabase(cfg, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			log.Info("Connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil

		default:
			dbPath := ":memory:"
			if cfg.Database.Database != "" {
				dbPath = cfg.Database.Database + ".db"
			}

			db, err := sqlite.SetupDatabase(dbPath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			if cfg.Database.SeedDemo {
				if err := sqlite.SeedDatabase(db); err != nil {
					log.Warn("Failed to seed database", zap.Error(err))
				}
			}

			log.Info("Connected to SQLite database",
				zap.String("path", dbPath),
				zap.Bool("in_memory", dbPath == ":memory:"),
			)
			return db, nil
		}
	},
)

// CacheModule provides the cache backend selected by configuration
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Cache.Backend == "redis" {
			log.Info("Using Redis cache",
				zap.String("host", cfg.Redis.Host),
				zap.Int("port", cfg.Redis.Port),
			)
			return redisRepo.NewCacheRepository(redisRepo.NewClient(cfg.Redis), log)
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository()
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeCatalog,
	gormRepo.NewFoodCatalog,
	gormRepo.NewPlanRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		recipes outbound.RecipeCatalog,
		foods outbound.FoodCatalog,
		plans outbound.PlanRepository,
		cache outbound.CacheRepository,
		metrics outbound.EngineMetrics,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlanService {
		return planapp.NewPlanService(recipes, foods, plans, cache, metrics, cfg.Engine.DefaultDurationDays, log)
	},
)

// MonitoringModule provides metrics and health checks
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(m *monitoring.MetricsCollector) outbound.EngineMetrics {
		return m
	},
	func(cfg *config.Config, log *zap.Logger, db *gorm.DB, cache outbound.CacheRepository) *healthcheck.Registry {
		registry := healthcheck.New(cfg.App.Version, log)
		registry.Register("database", healthcheck.NewDatabaseChecker(db))

		if redisCache, ok := cache.(*redisRepo.CacheRepository); ok {
			registry.Register("cache", healthcheck.NewRedisChecker(redisCache.Client()))
		} else {
			registry.Register("cache", healthcheck.NewCacheChecker(cache))
		}
		return registry
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Nutriplan application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			// Start HTTP server
			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Nutriplan application")

			// Shutdown HTTP server
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			// Close database connections
			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
