package cart_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// CreateCart godoc
// @Summary Create an anonymous cart
// @Description Returns the cart id clients use for every later cart call
// @Tags Store - Carts
// @Produce json
// @Success 201 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/carts [post]
func CreateCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart := models.Cart{}
	if err := config.StoreGorm.WithContext(ctx).Create(&cart).Error; err != nil {
		log.Printf("[cart.create] failed to create cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create cart"))
		return
	}

	log.Printf("[cart.create] cart %s created", cart.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Cart created successfully", cart.ToResponse()))
}
