package customer_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateCustomer godoc
// @Summary Create a customer profile
// @Description Non-staff callers always create their own profile; staff may pass user_id
// @Tags Store - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body models.CustomerRequest true "Customer"
// @Success 201 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/store/customers [post]
func CreateCustomer(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.CustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	// Step 2: Work out whose profile this is
	ownerID, _ := middleware.GetUserIDFromContext(c)
	if req.UserID != nil && middleware.IsStaff(c) {
		ownerID = *req.UserID
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var userCount int64
	if err := config.StoreGorm.WithContext(ctx).Model(&models.User{}).Where("id = ?", ownerID).Count(&userCount).Error; err != nil {
		log.Printf("[customer.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if userCount == 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"user_id": "Invalid user - object does not exist.",
		}))
		return
	}

	// Step 3: One profile per user
	var existing int64
	if err := config.StoreGorm.WithContext(ctx).Model(&models.Customer{}).Where("user_id = ?", ownerID).Count(&existing).Error; err != nil {
		log.Printf("[customer.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"user_id": "customer with this user already exists.",
		}))
		return
	}

	// Step 4: Save
	customer := models.Customer{UserID: ownerID}
	if !applyCustomerRequest(c, &customer, &req) {
		return
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&customer).Error; err != nil {
		log.Printf("[customer.create] failed to create customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer"))
		return
	}

	log.Printf("[customer.create] customer %s created for user %s", customer.ID, ownerID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", customer.ToResponse()))
}
