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

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"blog-cms/internal/config"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/gateway"
	"blog-cms/internal/handler"
	"blog-cms/internal/identity"
	"blog-cms/internal/infrastructure/database"
	"blog-cms/internal/lifecycle"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/middleware"
	"blog-cms/internal/repository"
	"blog-cms/internal/security"
	"blog-cms/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	poolConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(poolConfig.URL()); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied")
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	authorRepo := repository.NewPostgresAuthorRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)

	// Event delivery: subscribers always run in-process. In outbox mode the
	// services write to the outbox and the relay feeds the in-process bus.
	subscribers := eventbus.NewInProcessBus()
	eventbus.RegisterDefaultSubscribers(subscribers)

	var bus eventbus.EventBus = subscribers
	var relay *eventbus.Relay
	if cfg.EventBus == config.EventBusOutbox {
		outbox := repository.NewPostgresOutboxRepository(pool)
		bus = eventbus.NewOutboxBus(outbox)
		relay = eventbus.NewRelay(outbox, subscribers, cfg.OutboxBatchSize, cfg.OutboxMaxAttempts)
		relay.Start(cfg.OutboxPollInterval)
	}
	logger.Info("Event bus configured", slog.String("mode", cfg.EventBus))

	// Initialize services
	ids := identity.NewUUIDGenerator()
	slugger := identity.NewSlugger()
	articleService := service.NewArticleService(articleRepo, authorRepo, bus, ids, slugger, lifecycle.SystemClock)
	authorService := service.NewAuthorService(authorRepo, bus, ids, lifecycle.SystemClock)
	categoryService := service.NewCategoryService(categoryRepo, bus, ids, slugger, lifecycle.SystemClock)

	// Initialize gateways and handlers
	sanitizer := security.NewContentSanitizer()
	catalog := gateway.EnglishCatalog()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:            rate.Limit(cfg.RateLimitRPS),
		Burst:           cfg.RateLimitBurst,
		CleanupInterval: 5 * time.Minute,
	})
	defer rateLimiter.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Router{
		Health:      handler.NewHealthHandler(pool, metrics.PoolStatsFrom(pool)),
		Articles:    handler.NewArticleHandler(gateway.NewArticleGateways(articleService, sanitizer, catalog)),
		Authors:     handler.NewAuthorHandler(gateway.NewAuthorGateways(authorService, sanitizer, catalog)),
		Categories:  handler.NewCategoryHandler(gateway.NewCategoryGateways(categoryService, sanitizer, catalog)),
		RateLimiter: rateLimiter,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop accepting requests before the relay, so no event is appended
	// after the last poll.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	if relay != nil {
		logger.Info("Stopping outbox relay")
		relay.Stop()
	}

	logger.Info("Server exited")
}
