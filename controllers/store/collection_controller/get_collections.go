package collection_controller

import (
	"log"
	"net/http"

	collection_cache "github.com/Modeva-Ecommerce/storefront-api/cache"
	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCollections godoc
// @Summary List collections
// @Description Every collection with its products_count (cached for 5 minutes)
// @Tags Store - Collections
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CollectionWithCount}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/collections [get]
func GetCollections(c *gin.Context) {
	if cached, ok := collection_cache.GetList(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections retrieved successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	collections, err := collectionsWithCounts(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("collections.title ASC")
	})
	if err != nil {
		log.Printf("[collection.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if collections == nil {
		collections = []models.CollectionWithCount{}
	}

	collection_cache.SetList(collections)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections retrieved successfully", collections))
}
