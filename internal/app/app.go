// Package app assembles the application: configuration, logging,
// database, services, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/slotswapper/backend/internal/adapter/postgres"
	eventrepo "github.com/slotswapper/backend/internal/adapter/postgres/event"
	swaprequestrepo "github.com/slotswapper/backend/internal/adapter/postgres/swaprequest"
	userrepo "github.com/slotswapper/backend/internal/adapter/postgres/user"
	authjwt "github.com/slotswapper/backend/internal/auth"
	"github.com/slotswapper/backend/internal/config"
	authsvc "github.com/slotswapper/backend/internal/service/auth"
	eventsvc "github.com/slotswapper/backend/internal/service/event"
	swapsvc "github.com/slotswapper/backend/internal/service/swap"
	"github.com/slotswapper/backend/internal/transport/middleware"
	"github.com/slotswapper/backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	events := eventrepo.New(pool)
	swapRequests := swaprequestrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth.PasswordHashCost)
	eventService := eventsvc.NewService(logger, events, swapRequests, txManager)
	swapService := swapsvc.NewService(logger, events, swapRequests, txManager)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	authHandler := rest.NewAuthHandler(authService, logger)
	eventHandler := rest.NewEventHandler(eventService, logger)
	swapHandler := rest.NewSwapHandler(swapService, logger)

	mux := rest.NewRouter(healthHandler, authHandler, eventHandler, swapHandler)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
