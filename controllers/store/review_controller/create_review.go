package review_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateReview godoc
// @Summary Review a product
// @Description The product is taken from the path, never from the body
// @Tags Store - Reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body models.ReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse{data=models.ReviewResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Resolve product from the path
	productID, ok := resolveProduct(ctx, c)
	if !ok {
		return
	}

	// Step 2: Parse JSON request
	var req models.ReviewRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	// Step 3: Save
	review := models.Review{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&review).Error; err != nil {
		log.Printf("[review.create] failed to create review: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created successfully", review.ToResponse()))
}
