// Package server wires configuration, storage, services, and the HTTP
// transport into a runnable application.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xurshid686/student-track/internal/logging"
	"github.com/xurshid686/student-track/internal/server/auth"
	"github.com/xurshid686/student-track/internal/server/cache"
	"github.com/xurshid686/student-track/internal/server/config"
	"github.com/xurshid686/student-track/internal/server/httpapi"
	"github.com/xurshid686/student-track/internal/server/repositories/repomanager"
	"github.com/xurshid686/student-track/internal/server/services"
)

const dashboardCacheTTL = time.Minute

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	tokens  *auth.TokenManager
}

// NewApp assembles the application without touching the database. The
// connection is opened on Run, so construction stays cheap and the DSN
// is only exercised when the server actually starts.
func NewApp(cfg *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	return &App{
		config:  cfg,
		logger:  logger,
		manager: repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN),
		tokens:  auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenValidity),
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

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.manager.Init(ctx); err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer func() {
		if err := app.manager.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "error", err)
		}
	}()

	db := app.manager.Conn()

	if app.config.SeedOnStart {
		if err := services.EnsureSeedData(ctx, db, app.manager, app.logger); err != nil {
			return fmt.Errorf("seed error: %w", err)
		}
	}

	var dashboardCache cache.Cache
	if app.config.RedisDSN != "" {
		rc, err := cache.NewRedisCache(ctx, app.config.RedisDSN)
		if err != nil {
			app.logger.Warn(ctx, "redis unavailable, dashboard caching disabled", "error", err)
		} else {
			dashboardCache = rc
			defer func() {
				if err := rc.Close(); err != nil {
					app.logger.Warn(ctx, "cache close error", "error", err)
				}
			}()
		}
	}

	userService := services.NewUserService(db, app.manager, app.tokens, app.logger)
	dashboardService := services.NewDashboardService(db, app.manager, dashboardCache, dashboardCacheTTL, app.logger)

	srv := httpapi.NewServer(
		app.config.EndpointAddr,
		app.logger,
		userService,
		dashboardService,
		app.tokens,
		app.config.TokenValidity,
		app.config.IsProduction(),
	)

	return srv.Run(ctx)
}
