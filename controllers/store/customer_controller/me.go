package customer_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadOwnProfile(c *gin.Context) (*models.Customer, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication credentials were not provided"))
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.StoreGorm.WithContext(ctx).First(&customer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer profile not found"))
			return nil, false
		}
		log.Printf("[customer.me] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}
	return &customer, true
}

// GetMe godoc
// @Summary Get my customer profile
// @Tags Store - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/customers/me [get]
func GetMe(c *gin.Context) {
	customer, ok := loadOwnProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", customer.ToResponse()))
}

// UpdateMe godoc
// @Summary Replace my customer profile
// @Tags Store - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body models.CustomerRequest true "Customer"
// @Success 200 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/customers/me [put]
func UpdateMe(c *gin.Context) {
	customer, ok := loadOwnProfile(c)
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

	ctx, cancel := config.WithTimeout()
	defer cancel()

	saveCustomer(ctx, c, customer, "me")
}
