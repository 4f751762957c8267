package handler

import (
	"mintology-gateway/internal/adapter/http/middleware"
	redisStore "mintology-gateway/internal/adapter/storage/redis"
	"mintology-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TenantKeySvc   ports.TenantKeyService
	CatalogSvc     ports.CatalogService
	PricingSvc     ports.PricingService
	CheckoutSvc    ports.CheckoutService
	TokenSvc       ports.TokenService
	ProjectAPI     ports.ProjectAPI
	StorageAPI     ports.StorageAPI
	SearchAPI      ports.SearchAPI
	WalletAPI      ports.WalletAPI
	PluginAPI      ports.PluginAPI
	PreviewAPI     ports.PreviewAPI
	ProjectMeta    ports.ProjectMetaRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (storefront) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	catalogHandler := NewCatalogHandler(deps.CatalogSvc)
	v1.GET("/catalog", rl("catalog"), catalogHandler.List)

	orderHandler := NewOrderHandler(deps.PricingSvc, deps.CheckoutSvc)
	orders := v1.Group("/orders")
	{
		orders.GET("/quote", rl("catalog"), orderHandler.Quote)
		orders.GET("/summary", rl("catalog"), orderHandler.Summary)
		orders.POST("/checkout", rl("checkout"), orderHandler.Checkout)
	}

	walletHandler := NewWalletHandler(deps.WalletAPI, deps.TokenSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("/authorize", rl("wallet"), walletHandler.Authorize)
	}

	searchHandler := NewSearchHandler(deps.SearchAPI)
	search := v1.Group("/search")
	{
		search.POST("/contracts", rl("search"), searchHandler.Contracts)
		search.POST("/tokens", rl("search"), searchHandler.Tokens)
	}

	// --- JWT-authenticated routes (admin dashboard) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	settingsHandler := NewSettingsHandler(deps.TenantKeySvc, deps.PluginAPI)
	settings := v1.Group("/settings", jwtAuth)
	{
		settings.GET("/tenant-key", rl("dashboard"), settingsHandler.GetTenantKeyStatus)
		settings.PUT("/tenant-key", rl("dashboard"), settingsHandler.SetTenantKey)
		settings.POST("/register", rl("dashboard"), settingsHandler.RegisterPlugin)
	}

	projectHandler := NewProjectHandler(deps.ProjectAPI, deps.ProjectMeta)
	projects := v1.Group("/projects", jwtAuth)
	{
		projects.POST("", rl("dashboard"), projectHandler.Create)
		projects.GET("", rl("dashboard"), projectHandler.List)
		projects.GET("/:id", rl("dashboard"), projectHandler.Get)
		projects.PUT("/:id", rl("dashboard"), projectHandler.Update)
		projects.DELETE("/:id", rl("dashboard"), projectHandler.Delete)
		projects.POST("/:id/deploy", rl("dashboard"), projectHandler.Deploy)
		projects.GET("/:id/status", rl("dashboard"), projectHandler.Status)
		projects.GET("/:id/meta", rl("dashboard"), projectHandler.GetMeta)
		projects.PUT("/:id/meta", rl("dashboard"), projectHandler.SetMeta)
	}

	storageHandler := NewStorageHandler(deps.StorageAPI)
	storage := v1.Group("/storage", jwtAuth)
	{
		storage.POST("/upload-url", rl("dashboard"), storageHandler.CreateUploadURL)
		storage.DELETE("/files", rl("dashboard"), storageHandler.RemoveFile)
	}

	previewHandler := NewPreviewHandler(deps.PreviewAPI)
	v1.POST("/preview", jwtAuth, rl("dashboard"), previewHandler.Generate)

	return r
}
