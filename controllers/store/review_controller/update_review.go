package review_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// ReplaceReview godoc
// @Summary Replace a review
// @Tags Store - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param review_id path string true "Review ID"
// @Param review body models.ReviewRequest true "Review"
// @Success 200 {object} models.ApiResponse{data=models.ReviewResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews/{review_id} [put]
func ReplaceReview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, ok := loadReview(ctx, c)
	if !ok {
		return
	}

	var req models.ReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	review.Name = req.Name
	review.Description = req.Description
	saveReview(c, review)
}

// UpdateReview godoc
// @Summary Partially update a review
// @Tags Store - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param review_id path string true "Review ID"
// @Param review body models.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.ReviewResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews/{review_id} [patch]
func UpdateReview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, ok := loadReview(ctx, c)
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	if req.Name != nil {
		review.Name = *req.Name
	}
	if req.Description != nil {
		review.Description = *req.Description
	}
	saveReview(c, review)
}

func saveReview(c *gin.Context, review *models.Review) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Save(review).Error; err != nil {
		log.Printf("[review.update] failed to save review %s: %v", review.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update review"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review updated successfully", review.ToResponse()))
}
