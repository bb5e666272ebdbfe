package collection_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCollectionByID godoc
// @Summary Get a collection
// @Tags Store - Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} models.ApiResponse{data=models.CollectionWithCount}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/collections/{id} [get]
func GetCollectionByID(c *gin.Context) {
	collectionID, ok := utils.ParseUUIDParam(c, "id", "collection")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := collectionsWithCounts(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("collections.id = ?", collectionID)
	})
	if err != nil {
		log.Printf("[collection.get] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection retrieved successfully", rows[0]))
}
