package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/adapters/seedsource"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/core/services"
	"github.com/SscSPs/txn_dashboard/internal/handlers"
	"github.com/SscSPs/txn_dashboard/internal/middleware"
	"github.com/SscSPs/txn_dashboard/internal/platform/config"
	"github.com/SscSPs/txn_dashboard/internal/repositories/database/mongodb"
	"github.com/SscSPs/txn_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/txn_dashboard/internal/repositories/memory"
	"github.com/SscSPs/txn_dashboard/internal/utils"
	"github.com/SscSPs/txn_dashboard/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Transaction Dashboard API
// @version 1.0
// @description Month-filtered listing, statistics and charts over product sale transactions.

// @host localhost:3000
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := newRepositoryProvider(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	if repos.Close != nil {
		defer repos.Close()
	}

	seedClient := seedsource.NewClient(cfg.SeedURL, nil, cfg.SeedTimeout)
	serviceContainer := services.NewServiceContainer(repos, seedClient)

	// --- Seed the store before accepting requests ---
	if err := seedOnStartup(context.Background(), cfg, serviceContainer.Seed, logger); err != nil {
		// os.Exit skips deferred calls.
		if repos.Close != nil {
			repos.Close()
		}
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StoreBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedOnStartup runs the seed loader once when enabled. A failed load is
// logged and swallowed unless cfg.SeedFailFast is set, in which case the
// error is returned and startup must stop.
func seedOnStartup(ctx context.Context, cfg *config.Config, seed portssvc.SeedSvc, logger *slog.Logger) error {
	if !cfg.SeedOnStartup {
		logger.Info("Startup seeding disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(middleware.WithLogger(ctx, logger), cfg.SeedTimeout)
	defer cancel()

	inserted, err := seed.Seed(ctx)
	if err != nil {
		logger.Error("Failed to seed transactions", slog.String("error", err.Error()))
		if cfg.SeedFailFast {
			return err
		}
		return nil
	}
	logger.Info("Transactions seeded", slog.Int("inserted", inserted))
	return nil
}

// newRepositoryProvider connects to the configured record store.
func newRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("MongoDB connection established.", slog.String("database", cfg.MongoDatabase))

		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		repos, err := mongodb.NewRepositoryProvider(indexCtx, client, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			database.CloseMongoClient(client)
			return portsrepo.RepositoryProvider{}, err
		}
		repos.Close = func() { database.CloseMongoClient(client) }
		return repos, nil

	case config.StoreBackendPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, err
		}
		repos := pgsql.NewRepositoryProvider(dbPool)
		repos.Close = func() { database.ClosePgxPool(dbPool) }
		return repos, nil

	case config.StoreBackendMemory:
		return memory.NewRepositoryProvider(), nil
	}
	return portsrepo.RepositoryProvider{}, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.CORSAllowedOrigins
	return c
}
