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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReplaceProduct godoc
// @Summary Replace a product
// @Tags Store - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} models.ApiResponse{data=models.ProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id} [put]
func ReplaceProduct(c *gin.Context) {
	productID, ok := utils.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	var req models.ProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	updateProduct(c, productID, func(p *models.Product) {
		p.Title = req.Title
		p.Slug = req.Slug
		p.Description = req.Description
		p.UnitPrice = req.UnitPrice
		p.Inventory = req.Inventory
		p.CollectionID = req.CollectionID
	})
}

// UpdateProduct godoc
// @Summary Partially update a product
// @Tags Store - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.ProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, ok := utils.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	updateProduct(c, productID, func(p *models.Product) {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Slug != nil {
			p.Slug = *req.Slug
		}
		if req.Description != nil {
			p.Description = req.Description
		}
		if req.UnitPrice != nil {
			p.UnitPrice = *req.UnitPrice
		}
		if req.Inventory != nil {
			p.Inventory = *req.Inventory
		}
		if req.CollectionID != nil {
			p.CollectionID = *req.CollectionID
		}
	})
}

func updateProduct(c *gin.Context, productID uuid.UUID, apply func(*models.Product)) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Load current product
	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 2: Apply changes and check the collection still resolves
	previousCollection := product.CollectionID
	apply(&product)

	if product.CollectionID != previousCollection {
		if err := ensureCollectionExists(ctx, product.CollectionID); err != nil {
			if errors.Is(err, errCollectionNotFound) {
				c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
					"collection": "Invalid collection - object does not exist.",
				}))
				return
			}
			log.Printf("[product.update] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
	}

	// Step 3: Persist
	if err := config.StoreGorm.WithContext(ctx).Save(&product).Error; err != nil {
		log.Printf("[product.update] failed to save product %s: %v", product.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	collection_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product.ToResponse()))
}
