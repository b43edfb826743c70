// Package app wires the engine together: configuration, logging, database,
// migrations, issuer selection, and the interactive console.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dbelakovs/authcore/internal/cli"
	"github.com/dbelakovs/authcore/internal/config"
	"github.com/dbelakovs/authcore/internal/logging"
	"github.com/dbelakovs/authcore/internal/repositories/repomanager"
	"github.com/dbelakovs/authcore/internal/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	engine  *services.AuthService
	console *cli.App
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	issuer, err := newIssuer(db, m, cfg)
	if err != nil {
		return nil, err
	}

	engine := services.NewAuthService(db, m, issuer, cfg, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		engine:  engine,
		console: cli.NewApp(engine),
	}, nil
}

// newIssuer selects the credential issuer once, at startup. Unknown modes
// are a configuration error, not a runtime branch.
func newIssuer(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (services.Issuer, error) {
	switch cfg.Mode {
	case config.ModeToken:
		return services.NewTokenIssuer(cfg), nil
	case config.ModeSession:
		return services.NewSessionIssuer(db, m, cfg), nil
	default:
		return nil, fmt.Errorf("unknown issuance mode %q", cfg.Mode)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting console", "mode", string(app.config.Mode))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancelFunc()
		app.console.Run(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err.Error())
	}
}
