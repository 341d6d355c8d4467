package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/studio-site/internal/adapters/http"
	"github.com/jsamuelsen/studio-site/internal/adapters/http/handlers"
	"github.com/jsamuelsen/studio-site/internal/adapters/mailer"
	"github.com/jsamuelsen/studio-site/internal/adapters/store/database"
	"github.com/jsamuelsen/studio-site/internal/adapters/store/memory"
	"github.com/jsamuelsen/studio-site/internal/app"
	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/platform/config"
	"github.com/jsamuelsen/studio-site/internal/platform/logging"
	"github.com/jsamuelsen/studio-site/internal/platform/telemetry"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// siteStore is what the process needs from either store variant.
type siteStore interface {
	ports.CatalogStore
	ports.HealthChecker
}

func run(ctx context.Context, opts options) error {
	// 1-2. Load .env and configuration (fail fast)
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// 3. Initialize logging
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,

		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open the data store selected by the database URL
	store, variant, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			logger.Error("closing store", slog.Any("error", closeErr))
		}
	}()

	// 6. Seed the default content into an empty store
	if _, err := app.SeedIfEmpty(ctx, store, domain.DefaultCatalog(), logger); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	if opts.seedOnly {
		logger.Info("seed complete, exiting", slog.String("store", variant))
		return nil
	}

	// 7. Health registry
	healthRegistry := ports.NewHealthRegistry().WithTimeout(healthCheckTimeout(cfg))
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	logger.Debug("health checks registered", slog.Any("checks", healthRegistry.Names()))

	// 8. Notification sender and intake metrics
	notifier, err := mailer.New(mailer.Config{
		Host:          cfg.Mail.Host,
		Port:          cfg.Mail.Port,
		Username:      cfg.Mail.Username,
		Password:      cfg.Mail.Password,
		From:          cfg.Mail.From,
		To:            cfg.Mail.To,
		SubjectPrefix: cfg.Mail.SubjectPrefix,
		Timeout:       cfg.Mail.Timeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating mailer: %w", err)
	}

	if cfg.Mail.Password == "" {
		logger.Warn("mail password not set, quote notifications will fail",
			slog.String("host", cfg.Mail.Host),
		)
	}

	intakeMetrics, err := telemetry.NewIntakeMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("creating intake metrics: %w", err)
	}

	// 9. Application services
	catalogService := app.NewCatalogService(store, logger)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Notifier: notifier,
		Metrics:  intakeMetrics,
		Logger:   logger,
	})

	// 10. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime).WithStore(variant)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	siteHandler := handlers.NewSiteHandler(catalogService, quoteService)

	// 11. HTTP server with all middleware and routes
	server := http.New(http.Options{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Logger:       logger,
	})
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.Telemetry.ServiceName,
		HealthHandler: healthHandler,
		SiteHandler:   siteHandler,
		Timeout:       cfg.Server.RequestTimeout,
		MaxQuoteBytes: cfg.Server.MaxRequestSize,
	})

	// 12. Bind, then serve in the background
	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// loadConfig loads opts.envFile into the environment, then the profile
// configuration, and validates it. A missing env file is not an error.
func loadConfig(opts options) (*config.Config, error) {
	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", opts.envFile, err)
	}

	profile := opts.profile
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// healthCheckTimeout keeps readiness probes inside the request timeout.
func healthCheckTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.RequestTimeout > 0 && cfg.Server.RequestTimeout < ports.DefaultCheckTimeout {
		return cfg.Server.RequestTimeout
	}

	return ports.DefaultCheckTimeout
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, w)
}

// openStore returns the persistent store when a database URL is configured
// and the in-memory store otherwise, plus the variant name and a closer.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (siteStore, string, func() error, error) {
	if !cfg.UsePersistentStore() {
		logger.Warn("no database url configured, quote requests are kept in memory only")
		return memory.New(), handlers.StoreVariantMemory, func() error { return nil }, nil
	}

	store, err := database.Open(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening database: %w", err)
	}

	return store, handlers.StoreVariantPersistent, store.Close, nil
}

func databaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		URL:             cfg.Database.URL,
		Debug:           cfg.Database.Debug,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err == nil {
			return nil
		}

		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
