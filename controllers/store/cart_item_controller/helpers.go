package cart_item_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveCart parses :id and checks the cart exists, answering 400/404.
func resolveCart(ctx context.Context, c *gin.Context) (uuid.UUID, bool) {
	cartID, ok := utils.ParseUUIDParam(c, "id", "cart")
	if !ok {
		return uuid.Nil, false
	}

	var count int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Count(&count).Error; err != nil {
		log.Printf("[cart-item] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return uuid.Nil, false
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		return uuid.Nil, false
	}
	return cartID, true
}

// loadCartItem fetches :item_id scoped to the cart in the path, with its product.
func loadCartItem(ctx context.Context, c *gin.Context) (*models.CartItem, bool) {
	cartID, ok := resolveCart(ctx, c)
	if !ok {
		return nil, false
	}
	itemID, ok := utils.ParseUUIDParam(c, "item_id", "cart item")
	if !ok {
		return nil, false
	}

	var item models.CartItem
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
			return nil, false
		}
		log.Printf("[cart-item] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}
	return &item, true
}
