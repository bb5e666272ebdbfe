package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// DeleteCart godoc
// @Summary Delete a cart
// @Description Removes the cart and all of its items
// @Tags Store - Carts
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id} [delete]
func DeleteCart(c *gin.Context) {
	cartID, ok := utils.ParseUUIDParam(c, "id", "cart")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.DeleteCart(ctx, cartID); err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
			return
		}
		log.Printf("[cart.delete] failed to delete cart %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete cart"))
		return
	}

	c.Status(http.StatusNoContent)
}
