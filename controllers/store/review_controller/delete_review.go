package review_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// DeleteReview godoc
// @Summary Delete a review
// @Tags Store - Reviews
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param review_id path string true "Review ID"
// @Success 204
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews/{review_id} [delete]
func DeleteReview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, ok := loadReview(ctx, c)
	if !ok {
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(review).Error; err != nil {
		log.Printf("[review.delete] failed to delete review %s: %v", review.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete review"))
		return
	}

	c.Status(http.StatusNoContent)
}
