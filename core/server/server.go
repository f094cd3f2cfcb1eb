package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"social-planner/core/cache"
	"social-planner/core/config"
	"social-planner/core/controller"
	"social-planner/core/database"
	"social-planner/core/logger"
	"social-planner/core/middleware"
	"social-planner/modules/availability"
	"social-planner/modules/microcopy"
	"social-planner/modules/schedule"
	"social-planner/modules/schedule/repository"

	"github.com/coder/quartz"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Dependencies are the pieces New wires into the HTTP server.
type Dependencies struct {
	PresetRepo      repository.PresetRepositoryInterface
	Clock           quartz.Clock
	DefaultLocation *time.Location
	SuggestLimit    int
	// TokenValidator overrides JWT validation; nil uses the configured secret.
	TokenValidator middleware.TokenValidator
}

// New builds the echo instance with every module registered.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware(deps.TokenValidator)
	e.Use(echomw.Recover())
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())

	base := controller.NewBaseController()
	e.GET("/health", func(c echo.Context) error {
		return base.SuccessResponse(c, map[string]string{"status": "ok"}, "Success")
	})

	presets := schedule.Init(e, deps.PresetRepo, mw, deps.DefaultLocation)
	microcopy.Init(e, deps.Clock, deps.DefaultLocation)
	availability.Init(e, presets, mw, deps.DefaultLocation, deps.SuggestLimit)
	return e
}

// openPresetStore connects the configured preset backend. The returned
// closer releases the underlying connection.
func openPresetStore(cfg *config.Config) (repository.PresetRepositoryInterface, func(), error) {
	switch cfg.Schedule.PresetStore {
	case "postgres":
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		return repository.NewPostgresPresetRepository(db), func() { _ = db.Close() }, nil
	default:
		c, err := cache.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		return repository.NewRedisPresetRepository(c), func() { _ = c.Close() }, nil
	}
}

// Run loads configuration, connects storage and serves until SIGINT or
// SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.AppEnv); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.Schedule.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("load default timezone: %w", err)
	}

	repo, closeStore, err := openPresetStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	e := New(Dependencies{
		PresetRepo:      repo,
		Clock:           quartz.NewReal(),
		DefaultLocation: loc,
		SuggestLimit:    cfg.Schedule.SuggestLimit,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "addr", addr, "preset_store", cfg.Schedule.PresetStore, "env", cfg.AppEnv)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server:Run:ShuttingDown", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server:Run:Stopped")
	return nil
}
