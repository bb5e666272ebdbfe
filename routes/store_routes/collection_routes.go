package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/collection_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCollectionRoutes(rg *gin.RouterGroup) {
	collection := rg.Group("/collections")

	// Public
	collection.GET("", collection_controller.GetCollections)
	collection.GET("/:id", collection_controller.GetCollectionByID)

	// Staff
	protected := collection.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RequireStaff())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", collection_controller.CreateCollection)
		protected.PUT("/:id", collection_controller.UpdateCollection)
		protected.PATCH("/:id", collection_controller.UpdateCollection)
		protected.DELETE("/:id", collection_controller.DeleteCollection)
	}
}
