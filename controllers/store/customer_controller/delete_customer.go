package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// DeleteCustomer godoc
// @Summary Delete a customer profile
// @Description Refused with 405 while the customer has orders
// @Tags Store - Customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 405 {object} models.ApiResponse
// @Router /api/v1/store/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, ok := loadCustomerForWrite(ctx, c)
	if !ok {
		return
	}

	var orderCount int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", customer.ID).
		Count(&orderCount).Error; err != nil {
		log.Printf("[customer.delete] failed to count orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if orderCount > 0 {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse(c, "Can't delete customer as they have one or more orders."))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(customer).Error; err != nil {
		log.Printf("[customer.delete] failed to delete customer %s: %v", customer.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete customer"))
		return
	}

	c.Status(http.StatusNoContent)
}
