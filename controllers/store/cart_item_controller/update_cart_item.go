package cart_item_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Change a cart item's quantity
// @Tags Store - Cart Items
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item_id path string true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.UpdateCartItemResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id}/items/{item_id} [patch]
func UpdateCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, ok := loadCartItem(ctx, c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	// Only quantity is writable
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		Update("quantity", req.Quantity).Error; err != nil {
		log.Printf("[cart-item.update] failed to update item %s: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item updated successfully", models.UpdateCartItemResponse{
		Quantity: req.Quantity,
	}))
}
