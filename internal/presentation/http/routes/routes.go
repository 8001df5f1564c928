package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwirigi/salepoint-api/internal/config"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/handler"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/middleware"
	"github.com/mwirigi/salepoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth           *handler.AuthHandler
	Cart           *handler.CartHandler
	Checkout       *handler.CheckoutHandler
	Draft          *handler.DraftHandler
	Catalog        *handler.CatalogHandler
	Sale           *handler.DocumentHandler
	Purchase       *handler.DocumentHandler
	PurchaseReturn *handler.DocumentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)

	// Catalog (proxied to the backend, products cached per process)
	protected.GET("/products", h.Catalog.ListProducts)
	protected.GET("/contacts", h.Catalog.ListContacts)

	registerPOSRoutes(protected, h)

	registerDraftRoutes(protected, h)

	registerDocumentRoutes(protected, h)
}

func registerPOSRoutes(protected *gin.RouterGroup, h *Handlers) {
	pos := protected.Group("/pos")
	{
		pos.GET("/cart", h.Cart.Get)
		pos.POST("/cart/items", h.Cart.AddItem)
		pos.PUT("/cart/items/:id", h.Cart.UpdateQuantity)
		pos.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		pos.PUT("/cart/customer", h.Cart.SetCustomer)
		pos.PUT("/cart/discount", h.Cart.SetDiscount)
		pos.PUT("/cart/note", h.Cart.SetNote)
		pos.DELETE("/cart", h.Cart.Clear)
		pos.POST("/checkout", h.Checkout.Checkout)
	}
}

func registerDraftRoutes(protected *gin.RouterGroup, h *Handlers) {
	drafts := protected.Group("/drafts")
	{
		drafts.GET("", h.Draft.List)
		drafts.POST("", h.Draft.Create)
		drafts.GET("/:id", h.Draft.Get)
		drafts.DELETE("/:id", h.Draft.Discard)
		drafts.POST("/:id/rows", h.Draft.AppendRow)
		drafts.DELETE("/:id/rows/:index", h.Draft.RemoveRow)
		drafts.PUT("/:id/rows/:index/product", h.Draft.SetRowProduct)
		drafts.PUT("/:id/rows/:index", h.Draft.UpdateRow)
		drafts.PUT("/:id/header", h.Draft.SetHeader)
		drafts.POST("/:id/submit", h.Draft.Submit)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.PUT("/:id/status", h.Sale.UpdateStatus)
		sales.DELETE("/:id", h.Sale.Delete)
	}

	purchases := protected.Group("/purchases")
	{
		purchases.PUT("/:id/status", h.Purchase.UpdateStatus)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}

	purchaseReturns := protected.Group("/purchase-returns")
	{
		purchaseReturns.PUT("/:id/status", h.PurchaseReturn.UpdateStatus)
		purchaseReturns.DELETE("/:id", h.PurchaseReturn.Delete)
	}
}
