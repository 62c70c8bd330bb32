package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/octobees/vendor-matching/internal/auth"
	"github.com/octobees/vendor-matching/internal/config"
	"github.com/octobees/vendor-matching/internal/database"
	"github.com/octobees/vendor-matching/internal/handler"
	"github.com/octobees/vendor-matching/internal/metrics"
	middlewarepkg "github.com/octobees/vendor-matching/internal/middleware"
	"github.com/octobees/vendor-matching/internal/repository"
	"github.com/octobees/vendor-matching/internal/router"
	"github.com/octobees/vendor-matching/internal/service"
	"github.com/octobees/vendor-matching/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	checks := map[string]handler.HealthCheck{"database": pool.Ping}

	var sessions session.Store
	if cfg.RedisURL != "" {
		rdb, err := session.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Printf("conversation sessions enabled ttl=%s", cfg.SessionTTL)
	}

	var assistant handler.AssistantPoster
	if cfg.AssistantBaseURL != "" {
		client, err := handler.NewAssistantClient(nil, cfg.AssistantBaseURL)
		if err != nil {
			log.Fatalf("failed to configure assistant client: %v", err)
		}
		assistant = client
		log.Printf("assistant replies enabled base_url=%s", cfg.AssistantBaseURL)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	matchMetrics := metrics.New(registry)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAudience)

	vendorsRepo := repository.NewPGXVendorsRepository(pool)

	matchingService := service.NewMatchingService(vendorsRepo, cfg.MatchLimit, matchMetrics)
	vendorsService := service.NewVendorsService(vendorsRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging("/healthz", "/metrics"))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Health:  handler.NewHealthHandler(checks),
		Match:   handler.NewMatchHandler(matchingService, sessions, assistant),
		Vendors: handler.NewVendorsHandler(vendorsService),
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("vendor matching api listening port=%s match_limit=%d", cfg.Port, cfg.MatchLimit)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
