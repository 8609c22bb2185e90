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

	httpapi "github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/http"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/identity"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store/drivers/sqlite"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/cryptox"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier

	authService         *service.AuthService
	rolesService        *service.RolesService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initKeys(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initKeys builds the HS256 signer and verifier from the shared secret.
func (app *Application) initKeys() error {
	signer, err := jwtx.NewHS256Signer(app.cfg.SigningKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewHS256Verifier(app.cfg.SigningKey, app.cfg.Issuer, app.cfg.Audience)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services and provisions the
// default roles.
func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	credentials := identity.NewCredentials(app.db, cryptox.NewPasswordHasher(pepper))
	roles := identity.NewRoles(app.db)

	app.authService = service.NewAuthService(service.AuthServiceConfig{
		Credentials: credentials,
		Roles:       roles,
		Tokens:      service.NewRefreshTokenManager(app.db, app.cfg.RefreshTokenTTL),
		Signer:      app.signer,
		Issuer:      app.cfg.Issuer,
		Audience:    app.cfg.Audience,
		AccessTTL:   app.cfg.AccessTokenTTL,
	})
	app.rolesService = &service.RolesService{Roles: roles}

	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.rolesService.EnsureRoles(ctx, app.cfg.DefaultRoles); err != nil {
		return fmt.Errorf("failed to provision default roles: %w", err)
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.TokenRetention,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.AccessTokenTTL,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.RolesService = app.rolesService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
