package cart_item_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// DeleteCartItem godoc
// @Summary Remove an item from a cart
// @Tags Store - Cart Items
// @Param id path string true "Cart ID"
// @Param item_id path string true "Cart item ID"
// @Success 204
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id}/items/{item_id} [delete]
func DeleteCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, ok := loadCartItem(ctx, c)
	if !ok {
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", item.ID).Error; err != nil {
		log.Printf("[cart-item.delete] failed to delete item %s: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete cart item"))
		return
	}

	c.Status(http.StatusNoContent)
}
