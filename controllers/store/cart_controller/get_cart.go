package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCart godoc
// @Summary Get a cart
// @Description Cart with its items and total price
// @Tags Store - Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id} [get]
func GetCart(c *gin.Context) {
	cartID, ok := utils.ParseUUIDParam(c, "id", "cart")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart models.Cart
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		First(&cart, "id = ?", cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
			return
		}
		log.Printf("[cart.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved successfully", cart.ToResponse()))
}
