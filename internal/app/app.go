package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/haguru/credkeeper/config"
	"github.com/haguru/credkeeper/internal/credentialstore/memory"
	mongoStore "github.com/haguru/credkeeper/internal/credentialstore/mongo"
	postgresStore "github.com/haguru/credkeeper/internal/credentialstore/postgres"
	"github.com/haguru/credkeeper/internal/credvalidator"
	"github.com/haguru/credkeeper/internal/hasher"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/routes"
	"github.com/haguru/credkeeper/internal/server"
	"github.com/haguru/credkeeper/internal/userservice"
	mongoClient "github.com/haguru/credkeeper/pkg/databases/mongo"
	postgresClient "github.com/haguru/credkeeper/pkg/databases/postgres"
	"github.com/haguru/credkeeper/pkg/metrics"
	"github.com/haguru/credkeeper/pkg/zerolog"
)

// App represents the main application, containing server and configuration.
type App struct {
	Server  interfaces.Server
	Config  *config.ServiceConfig
	Logger  interfaces.Logger
	Metrics interfaces.Metrics
	Store   interfaces.CredentialStore
}

// NewApp loads the configuration at configPath and builds the application.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	return NewAppWithConfig(ctx, cfg, logger)
}

// NewAppWithConfig builds the application from an already validated configuration.
// The hasher self-test runs first; a failure stops startup.
func NewAppWithConfig(ctx context.Context, cfg *config.ServiceConfig, logger interfaces.Logger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	h, err := hasher.New(cfg.Credentials.Hasher, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hasher: %w", err)
	}
	if err := h.SelfTest(); err != nil {
		return nil, fmt.Errorf("hasher self-test failed: %w", err)
	}
	logger.Info("Hasher ready", "algorithm", cfg.Credentials.Hasher.Algorithm,
		"iterations", h.DefaultIterations())

	credValidator, err := credvalidator.New(cfg.Credentials.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential validator: %w", err)
	}

	app.Metrics = app.initializeMetrics()

	store, err := app.initializeStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}
	app.Store = store

	authService, err := userservice.NewAuthenticationService(store, h, logger, userservice.AuthOptions{
		EqualizeTiming: !cfg.Credentials.DisableTimingEqualization,
	})
	if err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("failed to initialize authentication service: %w", err)
	}
	registrationService := userservice.NewRegistrationService(store, h, credValidator, logger)

	route := routes.NewRoute(app.Metrics, authService, registrationService, store, logger, structValidator.New())
	app.Server = server.NewServer(cfg.Host, cfg.Port, logger)

	if err := app.addRoutes(route); err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	return app, nil
}

func (app *App) addRoutes(route *routes.Route) error {
	metricsHandler := promhttp.HandlerFor(app.Metrics.GetRegistry(), promhttp.HandlerOpts{})

	handlers := []struct {
		path    string
		handler http.Handler
	}{
		{routes.MetricsRouteAPI, metricsHandler},
		{routes.HealthRouteAPI, http.HandlerFunc(route.Healthz)},
		{routes.SignupRouteAPI, http.HandlerFunc(route.Signup)},
		{routes.LoginRouteAPI, http.HandlerFunc(route.Login)},
	}
	for _, h := range handlers {
		if err := app.Server.AddRoute(h.path, otelhttp.NewHandler(h.handler, h.path)); err != nil {
			return fmt.Errorf("failed to add %s route: %w", h.path, err)
		}
	}
	return nil
}

// Run serves until ctx is canceled or the server fails, then shuts down
// within the configured timeout and closes the store.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.Logger.Info("Shutdown requested")
	case err := <-errCh:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to shut down server: %w", err))
	}
	if err := app.Store.Close(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to close credential store: %w", err))
	}

	return runErr
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	routes.RegisterMetrics(appMetrics)
	return appMetrics
}

func (app *App) initializeStore(ctx context.Context) (interfaces.CredentialStore, error) {
	var store interfaces.CredentialStore
	dbCfg := app.Config.Database

	switch dbCfg.Type {
	case config.DatabaseTypeMongo:
		dbClient, err := mongoClient.NewMongoDB(dbCfg.MongoDB, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		if err := dbClient.Connect(ctx, dbCfg.MongoDB.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		store, err = mongoStore.NewMongoCredentialStore(dbClient, dbCfg.MongoDB.Collection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB store: %w", err)
		}

	case config.DatabaseTypePostgres:
		opts := dbCfg.Postgres.Options
		dbClient := postgresClient.NewPostgresDatabaseClient(opts.MaxOpenConns, opts.MaxIdleConns, opts.ConnMaxLifetime)
		if err := dbClient.Connect(ctx, dbCfg.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		var err error
		store, err = postgresStore.NewPostgresCredentialStore(dbClient, dbCfg.Postgres.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL store: %w", err)
		}

	case config.DatabaseTypeMemory:
		app.Logger.Warn("Using in-memory credential store; credentials are lost on restart")
		store = memory.NewStore()

	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbCfg.Type)
	}

	if err := store.EnsureIndices(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("failed to ensure indices: %w", err)
	}
	app.Logger.Info("Credential store ready", "type", dbCfg.Type)

	return store, nil
}
