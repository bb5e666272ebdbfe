package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/analytics_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	analytics.Use(middleware.RequireStaff())
	{
		analytics.GET("/top-products", analytics_controller.GetTopProducts)
		analytics.GET("/devices", analytics_controller.GetDeviceAnalytics)
	}
}
