package collection_controller

import (
	"log"
	"net/http"

	collection_cache "github.com/Modeva-Ecommerce/storefront-api/cache"
	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateCollection godoc
// @Summary Create a collection
// @Tags Store - Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collection body models.CollectionRequest true "Collection"
// @Success 201 {object} models.ApiResponse{data=models.CollectionWithCount}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/store/collections [post]
func CreateCollection(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.CollectionRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Featured product must exist when given
	valid, err := validFeaturedProduct(ctx, &req)
	if err != nil {
		log.Printf("[collection.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if !valid {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"featured_product": "Invalid product - object does not exist.",
		}))
		return
	}

	// Step 3: Save
	collection := models.Collection{
		Title:             req.Title,
		FeaturedProductID: req.FeaturedProductID,
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&collection).Error; err != nil {
		log.Printf("[collection.create] failed to create collection: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create collection"))
		return
	}

	collection_cache.Invalidate()
	log.Printf("[collection.create] collection %s created", collection.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Collection created successfully", models.CollectionWithCount{
		ID:                collection.ID,
		Title:             collection.Title,
		FeaturedProductID: collection.FeaturedProductID,
		ProductsCount:     0,
	}))
}
