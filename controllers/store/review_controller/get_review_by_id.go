package review_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetReviewByID godoc
// @Summary Get a review
// @Tags Store - Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Param review_id path string true "Review ID"
// @Success 200 {object} models.ApiResponse{data=models.ReviewResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews/{review_id} [get]
func GetReviewByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, ok := loadReview(ctx, c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review retrieved successfully", review.ToResponse()))
}
