package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/customer_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")

	// ════════════════════════════════════════════════════════════
	// Public Routes
	// ════════════════════════════════════════════════════════════
	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/:id", customer_controller.GetCustomerByID)

	// ════════════════════════════════════════════════════════════
	// Authenticated Routes (owner or staff checked in handlers)
	// ════════════════════════════════════════════════════════════
	authed := customer.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.Use(middleware.ActivityLoggingMiddleware())
	{
		authed.GET("/me", customer_controller.GetMe)
		authed.PUT("/me", customer_controller.UpdateMe)

		authed.POST("", customer_controller.CreateCustomer)
		authed.PUT("/:id", customer_controller.ReplaceCustomer)
		authed.PATCH("/:id", customer_controller.UpdateCustomer)
		authed.DELETE("/:id", customer_controller.DeleteCustomer)

		authed.GET("/:id/history",
			middleware.RequirePermission(models.PermViewHistory),
			customer_controller.GetCustomerHistory,
		)
	}
}
