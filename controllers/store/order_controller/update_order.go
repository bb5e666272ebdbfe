package order_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// UpdateOrder godoc
// @Summary Update an order's payment status
// @Tags Store - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body models.UpdateOrderRequest true "Payment status (P, C or F)"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, ok := loadVisibleOrder(ctx, c)
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("payment_status", req.PaymentStatus).Error; err != nil {
		log.Printf("[order.update] failed to update order %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	log.Printf("[order.update] order %s payment status %s -> %s", order.ID, order.PaymentStatus, req.PaymentStatus)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", models.UpdateOrderResponse{
		PaymentStatus: req.PaymentStatus,
	}))
}
