package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tipbot/config"
	httpHandler "tipbot/internal/adapter/http/handler"
	"tipbot/internal/adapter/ledger"
	"tipbot/internal/adapter/platform"
	pgStorage "tipbot/internal/adapter/storage/postgres"
	redisStorage "tipbot/internal/adapter/storage/redis"
	"tipbot/internal/core/ports"
	"tipbot/internal/events"
	"tipbot/internal/service"
	"tipbot/internal/worker"
	"tipbot/pkg/logger"
	"tipbot/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting tip bot")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	linkedRepo := pgStorage.NewLinkedAccountRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	unclaimedRepo := pgStorage.NewUnclaimedTipRepo(pool)
	platformRepo := pgStorage.NewPlatformIdentityRepo(pool)
	botConfigRepo := pgStorage.NewBotConfigRepo(pool)
	preparedRepo := pgStorage.NewPreparedWithdrawalRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	configCache := redisStorage.NewConfigCache(rdb)
	dedupStore := redisStorage.NewDedupStore(rdb)

	// Metrics
	collector := metrics.NewCollector()

	// External clients
	ledgerClient := ledger.NewClient(cfg.Ledger, &http.Client{Timeout: cfg.Ledger.Timeout}, log)
	platformClient := platform.NewClient(cfg.Platform, &http.Client{Timeout: cfg.Platform.Timeout}, log)

	// Entity-change dispatcher
	bus := events.NewDispatcher(256, 4, log)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	configSvc := service.NewConfigService(botConfigRepo, configCache, log)
	identitySvc := service.NewIdentityService(platformRepo, accountRepo, ledgerClient, transactor, log)
	registrySvc := service.NewRegistryService(userRepo, linkedRepo, transactor, bus, log)
	consolidatorSvc := service.NewConsolidatorService(linkedRepo, accountRepo, ledgerClient, bus, collector, log)
	unclaimedSvc := service.NewUnclaimedTipService(unclaimedRepo, ledgerClient, collector, log)

	// Entity changes feed the consolidator.
	bus.Subscribe(events.KindAccountUpdated, func(ctx context.Context, ev events.Event) {
		if err := consolidatorSvc.HandleAccountChange(ctx, ev.Account); err != nil {
			log.Error().Err(err).Str("account_id", ev.Account.ID).Msg("account change handler failed")
		}
	})
	bus.Subscribe(events.KindLinkedAccountUpdated, func(ctx context.Context, ev events.Event) {
		if err := consolidatorSvc.HandleLinkedAccountChange(ctx, ev.LinkedAccount); err != nil {
			log.Error().Err(err).Str("account_id", ev.LinkedAccount.AccountID).Msg("linked account change handler failed")
		}
	})
	bus.Start(ctx)
	defer bus.Close()

	// Initialize business services
	tipSvc := service.NewTipService(
		userRepo,
		platformClient,
		identitySvc,
		registrySvc,
		ledgerClient,
		txRepo,
		unclaimedSvc,
		configSvc,
		consolidatorSvc,
		collector,
		service.TipServiceOpts{
			CommandToken:   cfg.Platform.CommandToken,
			LoginURL:       cfg.Platform.LoginURL,
			CurrencySymbol: cfg.Bot.CurrencySymbol,
			PlatformName:   cfg.Platform.Name,
		},
		log,
	)
	onboardingSvc := service.NewOnboardingService(userRepo, identitySvc, registrySvc, unclaimedSvc, log)
	withdrawalSvc := service.NewWithdrawalService(userRepo, preparedRepo, ledgerClient, log)

	// Background sweeps (consolidation retries + unclaimed tip expiry)
	sweeper := worker.NewSweeper(consolidatorSvc, unclaimedSvc, cfg.Sweep.Interval, log)
	sweeper.Start(ctx)
	defer sweeper.Close()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TipProcessor:   tipSvc,
		PlatformClient: platformClient,
		OnboardingSvc:  onboardingSvc,
		WithdrawalSvc:  withdrawalSvc,
		SigSvc:         sigSvc,
		Deduper:        dedupStore,
		TokenSvc:       tokenSvc,
		WebhookSecret:  cfg.Platform.WebhookSecret,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:        collector,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
