package order_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// visibleOrders scopes the order query to what the caller may see: staff see
// every order, everyone else only their own customer's. A nil query with
// ok=true means the caller has no customer profile and therefore no orders.
func visibleOrders(ctx context.Context, c *gin.Context) (*gorm.DB, bool) {
	db := config.StoreGorm.WithContext(ctx).Model(&models.Order{})
	if middleware.IsStaff(c) {
		return db, true
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	var customer models.Customer
	if err := config.StoreGorm.WithContext(ctx).Select("id").First(&customer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, true
		}
		log.Printf("[order] failed to resolve customer for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}

	return db.Where("customer_id = ?", customer.ID), true
}

// loadVisibleOrder fetches :id with items and products, within the caller's scope.
func loadVisibleOrder(ctx context.Context, c *gin.Context) (*models.Order, bool) {
	orderID, ok := utils.ParseUUIDParam(c, "id", "order")
	if !ok {
		return nil, false
	}

	query, ok := visibleOrders(ctx, c)
	if !ok {
		return nil, false
	}
	if query == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return nil, false
	}

	var order models.Order
	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return nil, false
		}
		log.Printf("[order.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}
	return &order, true
}

// loadBillTo resolves the billing block for an order's customer.
func loadBillTo(ctx context.Context, c *gin.Context, order *models.Order) (services.InvoiceCustomer, bool) {
	var customer models.Customer
	if err := config.StoreGorm.WithContext(ctx).
		Preload("User").
		First(&customer, "id = ?", order.CustomerID).Error; err != nil {
		log.Printf("[order.invoice] failed to fetch customer %s: %v", order.CustomerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return services.InvoiceCustomer{}, false
	}

	billTo := services.InvoiceCustomer{Phone: customer.Phone}
	if customer.User != nil {
		billTo.Name = strings.TrimSpace(customer.User.FirstName + " " + customer.User.LastName)
		billTo.Email = customer.User.Email
	}
	if billTo.Name == "" {
		billTo.Name = billTo.Email
	}
	return billTo, true
}
