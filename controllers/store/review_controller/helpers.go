package review_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveProduct parses :id and checks the product exists, answering 400/404.
func resolveProduct(ctx context.Context, c *gin.Context) (uuid.UUID, bool) {
	productID, ok := utils.ParseUUIDParam(c, "id", "product")
	if !ok {
		return uuid.Nil, false
	}

	var count int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		log.Printf("[review] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return uuid.Nil, false
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return uuid.Nil, false
	}
	return productID, true
}

// loadReview fetches :review_id scoped to the product in the path.
func loadReview(ctx context.Context, c *gin.Context) (*models.Review, bool) {
	productID, ok := resolveProduct(ctx, c)
	if !ok {
		return nil, false
	}
	reviewID, ok := utils.ParseUUIDParam(c, "review_id", "review")
	if !ok {
		return nil, false
	}

	var review models.Review
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND product_id = ?", reviewID, productID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Review not found"))
			return nil, false
		}
		log.Printf("[review] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return nil, false
	}
	return &review, true
}
