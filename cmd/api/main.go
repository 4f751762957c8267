package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mintology-gateway/config"
	httpHandler "mintology-gateway/internal/adapter/http/handler"
	"mintology-gateway/internal/adapter/mintology"
	pgStorage "mintology-gateway/internal/adapter/storage/postgres"
	redisStorage "mintology-gateway/internal/adapter/storage/redis"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/internal/service"
	"mintology-gateway/pkg/logger"
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
		Msg("Starting Mintology Gateway")

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
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	projectMetaRepo := pgStorage.NewProjectMetaRepo(pool)

	// Initialize Redis stores
	snapshotCache := redisStorage.NewSnapshotCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT)
	tenantKeySvc := service.NewTenantKeyService(settingsRepo, encSvc, log)

	// Initialize the Mintology API client
	apiClient := mintology.NewClient(cfg.Mintology, tenantKeySvc, log)

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Admin, hashSvc, tokenSvc, log)
	catalogSvc := service.NewCatalogService(apiClient, snapshotCache, tenantKeySvc, cfg.Catalog, log)
	pricingSvc := service.NewPricingService(apiClient, projectMetaRepo, log)
	checkoutSvc := service.NewCheckoutService(pricingSvc, apiClient, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TenantKeySvc:   tenantKeySvc,
		CatalogSvc:     catalogSvc,
		PricingSvc:     pricingSvc,
		CheckoutSvc:    checkoutSvc,
		TokenSvc:       tokenSvc,
		ProjectAPI:     apiClient,
		StorageAPI:     apiClient,
		SearchAPI:      apiClient,
		WalletAPI:      apiClient,
		PluginAPI:      apiClient,
		PreviewAPI:     apiClient,
		ProjectMeta:    projectMetaRepo,
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
