package customer_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// ReplaceCustomer godoc
// @Summary Replace a customer profile
// @Tags Store - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body models.CustomerRequest true "Customer"
// @Success 200 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/customers/{id} [put]
func ReplaceCustomer(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, ok := loadCustomerForWrite(ctx, c)
	if !ok {
		return
	}

	var req models.CustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	if !applyCustomerRequest(c, customer, &req) {
		return
	}

	saveCustomer(ctx, c, customer, "replace")
}

// UpdateCustomer godoc
// @Summary Partially update a customer profile
// @Tags Store - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body models.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/customers/{id} [patch]
func UpdateCustomer(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, ok := loadCustomerForWrite(ctx, c)
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		birthDate, err := models.ParseBirthDate(req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"birth_date": "Date has wrong format. Use 2006-01-02.",
			}))
			return
		}
		customer.BirthDate = birthDate
	}
	if req.Membership != nil {
		customer.Membership = *req.Membership
	}

	saveCustomer(ctx, c, customer, "update")
}
