package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/order_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.Use(middleware.AuthMiddleware())

	// Any signed-in user, scoped to their own orders unless staff
	order.GET("", order_controller.GetOrders)
	order.POST("", order_controller.CreateOrder)
	order.GET("/:id", order_controller.GetOrderByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoice)

	// Staff only
	order.POST("/:id/invoice/send", middleware.RequireStaff(), order_controller.SendOrderInvoice)

	// Staff only, activity logged
	protected := order.Group("")
	protected.Use(middleware.RequireStaff())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.PATCH("/:id", order_controller.UpdateOrder)
		protected.DELETE("/:id", order_controller.DeleteOrder)
	}
}
