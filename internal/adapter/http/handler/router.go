package handler

import (
	"tipbot/internal/adapter/http/middleware"
	"tipbot/internal/core/ports"
	"tipbot/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TipProcessor   ports.TipProcessor
	PlatformClient ports.PlatformClient
	OnboardingSvc  ports.OnboardingService
	WithdrawalSvc  ports.WithdrawalService
	SigSvc         ports.SignatureService
	Deduper        ports.DeliveryDeduper
	TokenSvc       ports.TokenService
	WebhookSecret  string
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Collector // nil = metrics endpoint disabled
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

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// --- Webhook routes (HMAC-verified) ---
	webhookAuth := middleware.WebhookAuth(deps.WebhookSecret, deps.SigSvc, deps.Deduper, deps.Logger)
	webhookHandler := NewWebhookHandler(deps.TipProcessor, deps.PlatformClient, deps.Logger)
	webhooks := r.Group("/webhooks", webhookAuth)
	{
		webhooks.POST("/comments", webhookHandler.HandleComment)
	}

	// --- JWT-authenticated routes (callable entry points) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accountHandler := NewAccountHandler(deps.OnboardingSvc)
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)

	v1 := r.Group("/api/v1", jwtAuth)
	{
		v1.POST("/accounts/link", accountHandler.LinkAccount)
		v1.POST("/users/consent", accountHandler.AgreeDisclaimer)
		v1.POST("/withdrawals/prepare", withdrawalHandler.Prepare)
		v1.POST("/withdrawals/execute", withdrawalHandler.Execute)
	}

	return r
}
