package order_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrders godoc
// @Summary List orders
// @Description Staff see every order; other users see only their own
// @Tags Store - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/store/orders [get]
func GetOrders(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Scope to the caller
	query, ok := visibleOrders(ctx, c)
	if !ok {
		return
	}
	if query == nil {
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", []models.OrderResponse{}, utils.BuildMeta(page, limit, 0)))
		return
	}

	// Step 2: Count and page
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[order.list] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var orders []models.Order
	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		Order("placed_at DESC").
		Order("id DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&orders).Error; err != nil {
		log.Printf("[order.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orders[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", responses, utils.BuildMeta(page, limit, total)))
}

// GetOrderByID godoc
// @Summary Get an order
// @Tags Store - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, ok := loadVisibleOrder(ctx, c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order.ToResponse()))
}
