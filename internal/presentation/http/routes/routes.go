package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alsyedgraphics/printshop-api/internal/config"
	domainRepo "github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/internal/presentation/http/handler"
	"github.com/alsyedgraphics/printshop-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Client    *handler.ClientHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerClientRoutes(v1, h)
		registerInvoiceRoutes(v1, h, deps)

		// Dashboard and reports
		v1.GET("/dashboard", h.Dashboard.GetSummary)
		v1.GET("/reports/client-revenue", h.Dashboard.GetClientRevenue)
	}

	return router
}

func registerClientRoutes(v1 *gin.RouterGroup, h *Handlers) {
	clients := v1.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:mobile", h.Client.Get)
		clients.PUT("/:mobile", h.Client.Update)
		clients.DELETE("/:mobile", h.Client.Delete)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		// A retried save or payment with the same Idempotency-Key replays
		// the original response instead of applying twice
		invoices.POST("", idempotency, h.Invoice.Create)
		invoices.GET("/:number", h.Invoice.Get)
		invoices.POST("/:number/payments", idempotency, h.Invoice.AddPayment)
		invoices.GET("/:number/payments", h.Invoice.ListPayments)
		invoices.DELETE("/:number", h.Invoice.Delete)
	}
}
