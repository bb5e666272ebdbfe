package order_controller

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

// DeleteOrder godoc
// @Summary Delete an order
// @Description Removes the order and its items
// @Tags Store - Orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	orderID, ok := utils.ParseUUIDParam(c, "id", "order")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[order.delete] failed to delete order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete order"))
		return
	}

	c.Status(http.StatusNoContent)
}
