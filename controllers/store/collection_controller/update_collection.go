package collection_controller

import (
	"errors"
	"log"
	"net/http"

	collection_cache "github.com/Modeva-Ecommerce/storefront-api/cache"
	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCollection godoc
// @Summary Update a collection
// @Description Serves both PUT and PATCH. PUT replaces featured_product (null clears it); PATCH keeps it when omitted
// @Tags Store - Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param collection body models.CollectionRequest true "Collection"
// @Success 200 {object} models.ApiResponse{data=models.CollectionWithCount}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/collections/{id} [put]
// @Router /api/v1/store/collections/{id} [patch]
func UpdateCollection(c *gin.Context) {
	collectionID, ok := utils.ParseUUIDParam(c, "id", "collection")
	if !ok {
		return
	}

	var req models.CollectionRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Load current collection
	var collection models.Collection
	if err := config.StoreGorm.WithContext(ctx).First(&collection, "id = ?", collectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
			return
		}
		log.Printf("[collection.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 2: Featured product must exist when given
	valid, err := validFeaturedProduct(ctx, &req)
	if err != nil {
		log.Printf("[collection.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if !valid {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"featured_product": "Invalid product - object does not exist.",
		}))
		return
	}

	// Step 3: Persist
	collection.Title = req.Title
	if c.Request.Method == http.MethodPut || req.FeaturedProductID != nil {
		collection.FeaturedProductID = req.FeaturedProductID
	}
	if err := config.StoreGorm.WithContext(ctx).Save(&collection).Error; err != nil {
		log.Printf("[collection.update] failed to save collection %s: %v", collectionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update collection"))
		return
	}

	collection_cache.Invalidate()

	rows, err := collectionsWithCounts(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("collections.id = ?", collectionID)
	})
	if err != nil || len(rows) == 0 {
		log.Printf("[collection.update] failed to reload collection %s: %v", collectionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection updated successfully", rows[0]))
}
