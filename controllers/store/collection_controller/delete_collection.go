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

// DeleteCollection godoc
// @Summary Delete a collection
// @Description Refused with 405 while any product belongs to the collection
// @Tags Store - Collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 204
// @Failure 404 {object} models.ApiResponse
// @Failure 405 {object} models.ApiResponse
// @Router /api/v1/store/collections/{id} [delete]
func DeleteCollection(c *gin.Context) {
	collectionID, ok := utils.ParseUUIDParam(c, "id", "collection")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Collection must exist
	var collection models.Collection
	if err := config.StoreGorm.WithContext(ctx).Select("id").First(&collection, "id = ?", collectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
			return
		}
		log.Printf("[collection.delete] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 2: Refuse while it still holds products
	var productCount int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("collection_id = ?", collectionID).
		Count(&productCount).Error; err != nil {
		log.Printf("[collection.delete] failed to count products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if productCount > 0 {
		log.Printf("[collection.delete] refused: collection %s has %d products", collectionID, productCount)
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse(c, "Can't delete collection as it contains one or more products."))
		return
	}

	// Step 3: Delete
	if err := config.StoreGorm.WithContext(ctx).Delete(&collection).Error; err != nil {
		log.Printf("[collection.delete] failed to delete collection %s: %v", collectionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete collection"))
		return
	}

	collection_cache.Invalidate()
	log.Printf("[collection.delete] collection %s deleted", collectionID)

	c.Status(http.StatusNoContent)
}
