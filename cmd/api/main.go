package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"custody-ledger/config"
	httpHandler "custody-ledger/internal/adapter/http/handler"
	pgStorage "custody-ledger/internal/adapter/storage/postgres"
	redisStorage "custody-ledger/internal/adapter/storage/redis"
	"custody-ledger/internal/core/ports"
	"custody-ledger/internal/service"
	"custody-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("custody-ledger", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("instance_id", cfg.Ledger.InstanceID).
		Int("port", cfg.Server.Port).
		Msg("Starting Custody Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Migrations applied")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	allowanceRepo := pgStorage.NewAllowanceRepo(pool)
	stateRepo := pgStorage.NewLedgerStateRepo(pool)
	requestRepo := pgStorage.NewRequestRepo(pool)
	roleRepo := pgStorage.NewRoleRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	eventPublisher := redisStorage.NewEventPublisher(rdb, cfg.Ledger.EventStream)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	recoverer := service.NewCompactRecoverer()
	emitter := service.NewEmitter(eventPublisher, eventRepo, log)

	// Initialize ledger engines
	authSvc := service.NewAuthService(operatorRepo, hashSvc, encSvc, tokenSvc)
	transferSvc := service.NewTransferService(accountRepo, allowanceRepo, stateRepo, roleRepo, transactor, emitter, log)
	authzSvc := service.NewAuthorizationService(accountRepo, stateRepo, requestRepo, roleRepo, transactor, emitter, log, cfg.Ledger.InstanceID)
	sweepSvc := service.NewSweepService(accountRepo, roleRepo, transactor, recoverer, emitter, log, cfg.Ledger.InstanceID)
	mintingSvc := service.NewMintingService(accountRepo, stateRepo, requestRepo, roleRepo, transactor, emitter, log, cfg.Ledger.InstanceID)
	adminSvc := service.NewAdminService(accountRepo, roleRepo, transactor, emitter, log)
	querySvc := service.NewQueryService(accountRepo, allowanceRepo, stateRepo, requestRepo, roleRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TransferSvc:    transferSvc,
		AuthzSvc:       authzSvc,
		SweepSvc:       sweepSvc,
		MintingSvc:     mintingSvc,
		AdminSvc:       adminSvc,
		QuerySvc:       querySvc,
		OperatorRepo:   operatorRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
