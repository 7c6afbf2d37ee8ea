package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/bizledger/internal/adapter/http"
	"github.com/iho/bizledger/internal/adapter/http/handler"
	"github.com/iho/bizledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/bizledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/bizledger/internal/adapter/repository/redis"
	"github.com/iho/bizledger/internal/infrastructure/config"
	"github.com/iho/bizledger/internal/infrastructure/logger"
	"github.com/iho/bizledger/internal/infrastructure/postgres"
	"github.com/iho/bizledger/internal/infrastructure/redis"
	"github.com/iho/bizledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	statementCache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	entryUC := usecase.NewEntryUseCase(entryRepo, customerRepo, txManager, idGen, statementCache)
	statementUC := usecase.NewStatementUseCase(entryRepo, customerRepo, statementCache, cfg.StatementCacheTTL)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	statementHandler := handler.NewStatementHandler(statementUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:  customerHandler,
		EntryHandler:     entryHandler,
		StatementHandler: statementHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
