package cart_item_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetCartItems godoc
// @Summary List the items in a cart
// @Tags Store - Cart Items
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.ApiResponse{data=[]models.CartItemResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id}/items [get]
func GetCartItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cartID, ok := resolveCart(ctx, c)
	if !ok {
		return
	}

	var items []models.CartItem
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		log.Printf("[cart-item.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.CartItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart items retrieved successfully", responses))
}

// GetCartItem godoc
// @Summary Get one cart item
// @Tags Store - Cart Items
// @Produce json
// @Param id path string true "Cart ID"
// @Param item_id path string true "Cart item ID"
// @Success 200 {object} models.ApiResponse{data=models.CartItemResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id}/items/{item_id} [get]
func GetCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, ok := loadCartItem(ctx, c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item retrieved successfully", item.ToResponse()))
}
