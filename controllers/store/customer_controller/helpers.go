package customer_controller

import (
	"context"
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

// loadCustomerForWrite fetches :id and checks the caller owns it or is staff.
func loadCustomerForWrite(ctx context.Context, c *gin.Context) (*models.Customer, bool) {
	customerID, ok := utils.ParseUUIDParam(c, "id", "customer")
	if !ok {
		return nil, false
	}

	var customer models.Customer
	if err := config.StoreGorm.WithContext(ctx).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return nil, false
		}
		log.Printf("[customer] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	if customer.UserID != userID && !middleware.IsStaff(c) {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You do not have permission to perform this action"))
		return nil, false
	}
	return &customer, true
}

// applyCustomerRequest copies the full customer shape onto customer.
// An empty membership keeps the current level.
func applyCustomerRequest(c *gin.Context, customer *models.Customer, req *models.CustomerRequest) bool {
	birthDate, err := models.ParseBirthDate(req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"birth_date": "Date has wrong format. Use 2006-01-02.",
		}))
		return false
	}

	customer.Phone = req.Phone
	customer.BirthDate = birthDate
	if req.Membership != "" {
		customer.Membership = req.Membership
	}
	return true
}

func saveCustomer(ctx context.Context, c *gin.Context, customer *models.Customer, action string) {
	if err := config.StoreGorm.WithContext(ctx).Save(customer).Error; err != nil {
		log.Printf("[customer.%s] failed to save customer %s: %v", action, customer.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update customer"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", customer.ToResponse()))
}
