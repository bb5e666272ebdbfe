package routes

import (
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/controllers/health_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/routes/auth_routes"
	"github.com/Modeva-Ecommerce/storefront-api/routes/store_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the full HTTP surface.
func SetupRouter(settings config.Settings) *gin.Engine {
	router := gin.Default()

	// ✅ CORS, exposing download headers for invoice PDFs
	router.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	router.GET("/health", health_controller.Health)

	api := router.Group("/api/v1")
	auth_routes.SetupAuthRoutes(api)

	// Store routes; writes are rate limited
	store := api.Group("/store")
	store.Use(middleware.RateLimiter(settings.RateLimitMax, settings.RateLimitSpan))

	store_routes.SetupProductRoutes(store)
	store_routes.SetupCollectionRoutes(store)
	store_routes.SetupCartRoutes(store)
	store_routes.SetupCustomerRoutes(store)
	store_routes.SetupOrderRoutes(store)
	store_routes.SetupActivityRoutes(store)
	store_routes.SetupAnalyticsRoutes(store)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
