package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination-service/internal/config"
	"github.com/maxviazov/pagination-service/internal/handler"
	"github.com/maxviazov/pagination-service/internal/logger"
	"github.com/maxviazov/pagination-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger, handler.NewReadinessGate()); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
	appLogger.Info().Msg("👋 Service stopped")
}

// run serves until ctx is done. ready flips only once the port is bound.
func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger, ready *handler.ReadinessGate) error {
	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), handler.RequestLogger(appLogger))

	paginationSvc := service.NewPaginationService(cfg.Pagination, appLogger)
	handler.Register(engine, ready, paginationSvc)

	// The dashboard is served from another origin, so the API answers preflights itself.
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Handler:           c.Handler(engine),
		ReadHeaderTimeout: 5 * time.Second,
	}
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.App.Port)))
	if err != nil {
		return fmt.Errorf("failed to bind port %d: %w", cfg.App.Port, err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	ready.MarkReady()
	appLogger.Info().Str("addr", ln.Addr().String()).Msg("🚀 Service started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ready.MarkDraining()
	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
