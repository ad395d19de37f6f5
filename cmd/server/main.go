package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/lumapay/corebank/internal/adapter/http"
	"github.com/lumapay/corebank/internal/adapter/http/handler"
	postgresRepo "github.com/lumapay/corebank/internal/adapter/repository/postgres"
	redisRepo "github.com/lumapay/corebank/internal/adapter/repository/redis"
	"github.com/lumapay/corebank/internal/infrastructure/auth"
	"github.com/lumapay/corebank/internal/infrastructure/config"
	"github.com/lumapay/corebank/internal/infrastructure/eventpublisher"
	"github.com/lumapay/corebank/internal/infrastructure/logger"
	"github.com/lumapay/corebank/internal/infrastructure/metrics"
	"github.com/lumapay/corebank/internal/infrastructure/postgres"
	"github.com/lumapay/corebank/internal/infrastructure/redis"
	"github.com/lumapay/corebank/internal/usecase"
)

func main() {
	// .env is optional; real deployments inject the environment.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	walletRepo := postgresRepo.NewWalletRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	giftCardRepo := postgresRepo.NewGiftCardRepository(pool)
	proposalRepo := postgresRepo.NewProposalRepository(pool)
	subaccountRepo := postgresRepo.NewSubaccountRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	appMetrics := metrics.New()

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, walletRepo, txnRepo, giftCardRepo, outboxRepo, idGen, retrier, appMetrics)
	dashboardUC := usecase.NewDashboardUseCase(subaccountRepo, txnRepo)
	proposalUC := usecase.NewProposalUseCase(proposalRepo)
	walletUC := usecase.NewWalletUseCase(walletRepo, giftCardRepo)
	reportUC := usecase.NewReportUseCase(txnRepo)

	// Initialize handlers
	pixHandler := handler.NewPixHandler(ledgerUC)
	giftCardHandler := handler.NewGiftCardHandler(ledgerUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	proposalHandler := handler.NewProposalHandler(proposalUC)
	walletHandler := handler.NewWalletHandler(walletUC)
	adminHandler := handler.NewAdminHandler(ledgerUC, reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Start the outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(appLogger),
		Logger:     appLogger,
		Metrics:    appMetrics,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PixHandler:       pixHandler,
		GiftCardHandler:  giftCardHandler,
		DashboardHandler: dashboardHandler,
		ProposalHandler:  proposalHandler,
		WalletHandler:    walletHandler,
		AdminHandler:     adminHandler,
		HealthHandler:    healthHandler,

		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          appMetrics,
		Logger:           appLogger,

		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
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

	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
