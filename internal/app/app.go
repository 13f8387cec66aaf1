package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/config"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/event"
	handler "github.com/hritvik715/LanguageKeyboardCentral/internal/handler/http"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository"
	memoryrepo "github.com/hritvik715/LanguageKeyboardCentral/internal/repository/memory"
	postgresrepo "github.com/hritvik715/LanguageKeyboardCentral/internal/repository/postgres"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository/rediscache"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/seed"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/service"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/database"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/health"
	pkgkafka "github.com/hritvik715/LanguageKeyboardCentral/pkg/kafka"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/middleware"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	tracingShutdown func(context.Context) error
	httpServer      *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a := &App{cfg: cfg, logger: logger}

	// Tracing.
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.OTLPEndpoint = cfg.TracingEndpoint
	tracingCfg.SampleRate = cfg.TracingSampleRate
	tracingCfg.Enabled = cfg.TracingEnabled

	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.tracingShutdown = tracingShutdown

	// Storage.
	catalogRepo, cartRepo, err := a.initStores(ctx)
	if err != nil {
		return nil, err
	}

	// Optional Redis read-through cache in front of the catalog.
	if cfg.CacheEnabled {
		rdb, err := database.NewRedisClient(ctx, cfg.Redis())
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.rdb = rdb

		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		catalogRepo = rediscache.NewCatalogCache(catalogRepo, rdb, ttl, logger)
		logger.Info("catalog cache enabled",
			slog.String("addr", cfg.Redis().Addr()),
			slog.Duration("ttl", ttl),
		)
	}

	// Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	a.producer = pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Seed the catalog on first start.
	if err := seed.Run(ctx, catalogRepo, logger); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	// Build the dependency graph.
	eventProducer := event.NewProducer(a.producer, logger)
	catalogService := service.NewCatalogService(catalogRepo, eventProducer, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, eventProducer, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	if a.pool != nil {
		healthHandler.Register("postgres", func(ctx context.Context) error {
			return a.pool.Ping(ctx)
		})
	}
	if a.rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return a.rdb.Ping(ctx).Err()
		})
	}

	// HTTP router.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment
	router := handler.NewRouter(catalogService, cartService, healthHandler, corsCfg, logger)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

// initStores builds the catalog and cart repositories for the configured
// driver. The postgres driver runs migrations before returning.
func (a *App) initStores(ctx context.Context) (repository.CatalogRepository, repository.CartRepository, error) {
	switch a.cfg.StoreDriver {
	case config.DriverPostgres:
		pgCfg := a.cfg.Postgres()
		pool, err := database.NewPostgresPoolWithLogger(ctx, &pgCfg, a.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		a.pool = pool

		if err := database.RunMigrations(ctx, pool, postgresrepo.MigrationFiles(), a.logger); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}

		a.logger.Info("postgres store initialized",
			slog.String("host", pgCfg.Host),
			slog.String("database", pgCfg.DBName),
		)
		return postgresrepo.NewCatalogRepository(pool), postgresrepo.NewCartRepository(pool), nil

	case config.DriverMemory:
		a.logger.Info("in-memory store initialized")
		return memoryrepo.NewCatalogRepository(), memoryrepo.NewCartRepository(), nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver: %q", a.cfg.StoreDriver)
	}
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
			slog.String("store_driver", a.cfg.StoreDriver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
