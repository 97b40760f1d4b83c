// Package server wires configuration, storage, services and the gRPC
// endpoint into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/dialkeeper/internal/logging"
	"github.com/dmitrijs2005/dialkeeper/internal/server/config"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dialkeeper/internal/server/services"
	"github.com/dmitrijs2005/dialkeeper/internal/tracing"

	gs "github.com/dmitrijs2005/dialkeeper/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	authService     *services.AuthService
	secretService   *services.SecretService
	shutdownTracing func(context.Context) error
}

// NewApp validates the config, opens and migrates the database and builds
// the services. The caller owns the returned App and must call Run or Close.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, err
	}

	shutdownTracing, err := tracing.Setup(ctx, c.ServiceName, c.OtelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing init error: %w", err)
	}

	db, m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	as, err := services.NewAuthService(db, m, c, logger)
	if err != nil {
		_ = db.Close()
		_ = shutdownTracing(ctx)
		return nil, err
	}
	ss := services.NewSecretService(db, m, logger)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		authService:     as,
		secretService:   ss,
		shutdownTracing: shutdownTracing,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.secretService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database and flushes traces.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "tolerance", app.authService.Tolerance())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close(context.Background())
}

// Close releases the database and flushes pending spans.
func (app *App) Close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	if err := app.shutdownTracing(ctx); err != nil {
		app.logger.Error(ctx, "tracing shutdown error", "error", err)
	}
}
