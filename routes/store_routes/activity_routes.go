package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/activity_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupActivityRoutes(rg *gin.RouterGroup) {
	activity := rg.Group("/activity-logs")
	activity.Use(middleware.AuthMiddleware())
	activity.Use(middleware.RequireStaff())
	{
		activity.GET("", activity_controller.GetActivityLogs)
	}
}
