package customer_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// HistoryPlaceholder is returned until purchase history is built.
const HistoryPlaceholder = "not implemented yet"

// GetCustomerHistory godoc
// @Summary Customer purchase history
// @Description Requires staff or the store.view_history permission
// @Tags Store - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse{data=string}
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/store/customers/{id}/history [get]
func GetCustomerHistory(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, HistoryPlaceholder, HistoryPlaceholder))
}
