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
)

// CreateProduct godoc
// @Summary Create a product
// @Tags Store - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.ProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/store/products [post]
func CreateProduct(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.ProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Validate collection exists
	if err := ensureCollectionExists(ctx, req.CollectionID); err != nil {
		if errors.Is(err, errCollectionNotFound) {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"collection": "Invalid collection - object does not exist.",
			}))
			return
		}
		log.Printf("[product.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 3: Save (UUID v7 generated in BeforeCreate)
	product := models.Product{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[product.create] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	collection_cache.Invalidate()
	log.Printf("[product.create] product %s created", product.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product.ToResponse()))
}
