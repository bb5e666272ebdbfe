package review_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetReviews godoc
// @Summary List a product's reviews
// @Tags Store - Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=[]models.ReviewResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	productID, ok := resolveProduct(ctx, c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := config.StoreGorm.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("[review.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews retrieved successfully", responses))
}
