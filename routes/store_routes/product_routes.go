package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/product_controller"
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/review_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Staff Routes (Auth + Staff + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RequireStaff())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", product_controller.CreateProduct)
		protected.PUT("/:id", product_controller.ReplaceProduct)
		protected.PATCH("/:id", product_controller.UpdateProduct)
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}

	setupReviewRoutes(product)
}

// Reviews are nested under their product: /products/:id/reviews
func setupReviewRoutes(product *gin.RouterGroup) {
	reviews := product.Group("/:id/reviews")

	// Anyone may read and post reviews
	reviews.GET("", review_controller.GetReviews)
	reviews.GET("/:review_id", review_controller.GetReviewByID)
	reviews.POST("", review_controller.CreateReview)

	moderation := reviews.Group("")
	moderation.Use(middleware.AuthMiddleware())
	moderation.Use(middleware.RequireStaff())
	moderation.Use(middleware.ActivityLoggingMiddleware())
	{
		moderation.PUT("/:review_id", review_controller.ReplaceReview)
		moderation.PATCH("/:review_id", review_controller.UpdateReview)
		moderation.DELETE("/:review_id", review_controller.DeleteReview)
	}
}
