package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/petproject/community/internal/community/http"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/session"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/internal/community/store/drivers/postgres"
	"github.com/petproject/community/internal/community/store/drivers/sqlite"
	"github.com/petproject/community/pkg/cryptox"
	"github.com/petproject/community/pkg/jwtx"
	"github.com/petproject/community/pkg/mailx"
	"github.com/petproject/community/pkg/otelx"
	"github.com/petproject/community/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "pet-community"
)

// Application holds the community service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	signer        *jwtx.EdDSASigner
	keys          *jwtx.KeySet
	mailer        mailx.Mailer
	traceShutdown func(context.Context) error

	userService         *service.UserService
	authEmailService    *service.AuthEmailService
	boardService        *service.BoardService
	rankingService      *service.RankingService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	ctx := context.Background()
	shutdown, err := otelx.Setup(ctx, otelx.Config{
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: serviceName,
		Version:     BuildVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.traceShutdown = shutdown

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	app.signer, app.keys, err = InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.mailer, err = mailx.New(cfg.MailDriver, cfg.ResendAPIKey, cfg.MailFrom, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("community service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down community service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.traceShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("community service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
			app.cfg.DatabaseFile,
		))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	hasher, err := cryptox.NewPasswordHasher(app.cfg.PasswordHasher)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.authEmailService = &service.AuthEmailService{
		Store:  app.db,
		Mailer: app.mailer,
	}
	app.userService = &service.UserService{
		Store:         app.db,
		Hasher:        hasher,
		AuthEmails:    app.authEmailService,
		AdminUsername: app.cfg.AdminUsername,
	}
	app.boardService = &service.BoardService{
		Store:           app.db,
		AtomicViewCount: app.cfg.AtomicViewCount,
	}
	app.rankingService = &service.RankingService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	sessions := &session.Manager{
		Store:      app.db,
		Signer:     app.signer,
		Verifier:   jwtx.NewVerifierEdDSA(app.keys, app.cfg.SessionIssuer),
		CookieName: app.cfg.SessionCookieName,
		Issuer:     app.cfg.SessionIssuer,
		TTL:        app.cfg.SessionTTL,
		Secure:     app.cfg.Env == "prod",
	}

	router := httpapi.NewRouter(app.keys, sessions, BuildVersion, app.db, app.logger)
	router.UserService = app.userService
	router.AuthEmailService = app.authEmailService
	router.BoardService = app.boardService
	router.RankingService = app.rankingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
