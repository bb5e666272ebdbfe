package store_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/cart_controller"
	"github.com/Modeva-Ecommerce/storefront-api/controllers/store/cart_item_controller"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers anonymous cart routes. Carts are addressed by
// their UUID alone, so there is no auth here.
func SetupCartRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/carts")
	{
		cart.POST("", cart_controller.CreateCart)
		cart.GET("/:id", cart_controller.GetCart)
		cart.DELETE("/:id", cart_controller.DeleteCart)
	}

	items := cart.Group("/:id/items")
	{
		items.GET("", cart_item_controller.GetCartItems)
		items.POST("", cart_item_controller.AddCartItem)
		items.GET("/:item_id", cart_item_controller.GetCartItem)
		items.PATCH("/:item_id", cart_item_controller.UpdateCartItem)
		items.DELETE("/:item_id", cart_item_controller.DeleteCartItem)
	}
}
