package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/folioview/backend/internal/adapter/memory"
	"github.com/folioview/backend/internal/adapter/postgres"
	presetrepo "github.com/folioview/backend/internal/adapter/postgres/preset"
	"github.com/folioview/backend/internal/auth"
	"github.com/folioview/backend/internal/config"
	"github.com/folioview/backend/internal/transport/middleware"
	"github.com/folioview/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage layer, session registry, and HTTP transport, then serves until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var (
		repo   rest.PresetRepository
		health *rest.HealthHandler
	)
	if cfg.Database.DSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		repo = presetrepo.New(pool)
		health = rest.NewHealthHandler(pool, BuildVersion())
		logger.Info("preset storage: postgres")
	} else {
		repo = memory.NewPresetStore()
		health = rest.NewHealthHandler(nil, BuildVersion())
		logger.Info("preset storage: in-memory")
	}

	sessions := rest.NewSessionRegistry(logger, repo, cfg.Sessions)
	defer sessions.Stop()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Log:                  logger,
		Sessions:             sessions,
		Health:               health,
		Validator:            jwtManager,
		CORS:                 cfg.CORS,
		RateLimit:            rateLimiter,
		APIRequestsPerMinute: cfg.Server.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
