package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/config"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/infrastructure/upstream"
	"github.com/mwirigi/salepoint-api/internal/logger"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/handler"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/routes"
	"github.com/mwirigi/salepoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Setup(cfg.App.Env, cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager (validation only, tokens are issued upstream)
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret)

	// Initialize upstream gateway clients
	client := upstream.NewClient(&cfg.Upstream)
	catalogClient := upstream.NewCatalogClient(client)
	documentClient := upstream.NewDocumentClient(client)
	authClient := upstream.NewAuthClient(client)

	// Initialize services
	sessions := service.NewSessionManager(cfg.POS.TaxRate)
	catalogService := service.NewCatalogService(catalogClient, catalogClient, cfg.POS.CatalogPageSize)
	cartService := service.NewCartService(sessions, catalogService)
	checkoutService := service.NewCheckoutService(sessions, documentClient, catalogService)
	draftService := service.NewDraftService(sessions, catalogService, documentClient)
	documentService := service.NewDocumentService(documentClient)
	authService := service.NewAuthService(authClient, sessions)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Cart:           handler.NewCartHandler(cartService),
		Checkout:       handler.NewCheckoutHandler(checkoutService),
		Draft:          handler.NewDraftHandler(draftService),
		Catalog:        handler.NewCatalogHandler(catalogService),
		Sale:           handler.NewDocumentHandler(documentService, enum.DocumentTypeSale),
		Purchase:       handler.NewDocumentHandler(documentService, enum.DocumentTypePurchase),
		PurchaseReturn: handler.NewDocumentHandler(documentService, enum.DocumentTypePurchaseReturn),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
