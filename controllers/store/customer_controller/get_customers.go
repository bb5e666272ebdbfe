package customer_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCustomers godoc
// @Summary List customers
// @Tags Store - Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/customers [get]
func GetCustomers(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.StoreGorm.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error; err != nil {
		log.Printf("[customer.list] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var customers []models.Customer
	if err := config.StoreGorm.WithContext(ctx).
		Order("id ASC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&customers).Error; err != nil {
		log.Printf("[customer.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, customers[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", responses, utils.BuildMeta(page, limit, total)))
}

// GetCustomerByID godoc
// @Summary Get a customer
// @Tags Store - Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse{data=models.CustomerResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/customers/{id} [get]
func GetCustomerByID(c *gin.Context) {
	customerID, ok := utils.ParseUUIDParam(c, "id", "customer")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.StoreGorm.WithContext(ctx).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		log.Printf("[customer.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", customer.ToResponse()))
}
