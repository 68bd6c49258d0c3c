// Package server initializes and runs the main application server.
// It validates configuration, opens the database, applies migrations,
// and starts the HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/skorolev/taskkeeper/internal/logging"
	"github.com/skorolev/taskkeeper/internal/server/auth"
	"github.com/skorolev/taskkeeper/internal/server/config"
	httpapi "github.com/skorolev/taskkeeper/internal/server/http"
	"github.com/skorolev/taskkeeper/internal/server/repositories/repomanager"
	"github.com/skorolev/taskkeeper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	httpServer  *httpapi.HTTPServer
}

func NewApp(cfg *config.Config) (*App, error) {

	// Missing secret or unknown algorithm must stop the process here, before
	// any request can be served.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := auth.SigningMethod(cfg.JWTAlgorithm)
	if err != nil {
		return nil, err
	}

	s := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(s)

	gin.SetMode(cfg.GinMode)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, cfg, method)
	ts := services.NewTodoService(db, rm)

	hs := httpapi.NewHTTPServer(cfg, logger, us, ts)

	return &App{config: cfg, logger: logger, db: db, repomanager: rm, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	return nil
}
