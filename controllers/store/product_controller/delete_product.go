package product_controller

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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Refused with 405 while any order item references the product
// @Tags Store - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} models.ApiResponse
// @Failure 405 {object} models.ApiResponse
// @Router /api/v1/store/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, ok := utils.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Product must exist
	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.delete] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 2: Refuse while ordered
	var orderItemCount int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&orderItemCount).Error; err != nil {
		log.Printf("[product.delete] failed to count order items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if orderItemCount > 0 {
		log.Printf("[product.delete] refused: product %s has %d order items", productID, orderItemCount)
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse(c, "Can't delete product as it contains one or more order items."))
		return
	}

	// Step 3: Delete along with cart lines and reviews, unfeature it
	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Collection{}).
			Where("featured_product_id = ?", productID).
			Update("featured_product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		log.Printf("[product.delete] failed to delete product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	collection_cache.Invalidate()
	log.Printf("[product.delete] product %s deleted", productID)

	c.Status(http.StatusNoContent)
}
