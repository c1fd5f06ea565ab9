package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/orgfolio/internal/adapter/driven/github"
	httphandler "github.com/ericfisherdev/orgfolio/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/orgfolio/internal/adapter/driving/web"
	"github.com/ericfisherdev/orgfolio/internal/application"
	"github.com/ericfisherdev/orgfolio/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"org", cfg.Org,
		"listen_addr", cfg.ListenAddr,
		"page_size", cfg.PageSize,
		"request_timeout", cfg.RequestTimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire adapters: unauthenticated GitHub client behind the caching and
	// rate-limit transport, then the portfolio service over its port.
	ghClient := githubadapter.NewClient()
	portfolio := application.NewPortfolioService(ghClient, cfg.Org, cfg.PageSize, cfg.RequestTimeout)

	// 4. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(portfolio, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 5. Create web handler and register GUI routes.
	webHandler := webhandler.NewHandler(portfolio, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("orgfolio started", "org", cfg.Org, "listen_addr", cfg.ListenAddr)

	// 6. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 7. Graceful shutdown with 10s timeout for HTTP server drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
