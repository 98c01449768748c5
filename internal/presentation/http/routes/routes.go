package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mainakibe/printdesk-api/internal/config"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/handler"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product     *handler.ProductHandler
	Category    *handler.CategoryHandler
	Order       *handler.OrderHandler
	Requirement *handler.RequirementHandler
	Ledger      *handler.LedgerHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())
		v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))

		registerProductRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerRequirementRoutes(v1, h)
		registerLedgerRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.Stats)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.POST("/bulk", h.Product.BulkCreate)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.PATCH("/:id/quantity", h.Product.AdjustQuantity)
		products.DELETE("/:id", h.Product.Delete)
		products.GET("/:id/depot", h.Requirement.GetDepotSplit)
		products.PUT("/:id/depot", h.Requirement.SetDepotSplit)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Edit)
		orders.DELETE("/:id", h.Order.Delete)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.PUT("/:id/category", h.Order.AssignCategory)
		orders.GET("/:id/payments", h.Order.ListPartialPayments)
		orders.POST("/:id/payments", h.Order.AddPartialPayment)
	}
}

func registerRequirementRoutes(v1 *gin.RouterGroup, h *Handlers) {
	requirements := v1.Group("/requirements")
	{
		requirements.GET("", h.Requirement.GetReport)
		requirements.POST("/plan/reset", h.Requirement.ResetPlan)
		requirements.PATCH("/plan/:productId", h.Requirement.UpdatePlanEntry)
	}
}

func registerLedgerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	needs := v1.Group("/needs")
	{
		needs.GET("", h.Ledger.ListManualNeeds)
		needs.POST("", h.Ledger.SetManualNeed)
		needs.DELETE("/:id", h.Ledger.DeleteManualNeed)
	}

	writings := v1.Group("/writings")
	{
		writings.GET("", h.Ledger.ListUnpaidWritings)
		writings.POST("", h.Ledger.CreateUnpaidWriting)
		writings.PUT("/:id", h.Ledger.UpdateUnpaidWriting)
		writings.DELETE("/:id", h.Ledger.DeleteUnpaidWriting)
	}

	notes := v1.Group("/notes")
	{
		notes.GET("/:key", h.Ledger.GetNote)
		notes.PUT("/:key", h.Ledger.SetNote)
	}
}
