package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var productOrdering = map[string]string{
	"unit_price":   "unit_price ASC",
	"-unit_price":  "unit_price DESC",
	"last_update":  "last_update ASC",
	"-last_update": "last_update DESC",
}

// GetProducts godoc
// @Summary List products
// @Description Paginated product list with collection, price range, search and ordering filters
// @Tags Store - Products
// @Produce json
// @Param collection_id query string false "Collection ID"
// @Param unit_price__gt query number false "Minimum unit price (exclusive)"
// @Param unit_price__lt query number false "Maximum unit price (exclusive)"
// @Param search query string false "Search title and description"
// @Param ordering query string false "unit_price, -unit_price, last_update, -last_update"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.ProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/products [get]
func GetProducts(c *gin.Context) {
	// Step 1: Bind filters
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, utils.FieldErrors(err)))
		return
	}
	page, limit := utils.NormalizePagination(filter.Page, filter.Limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Build filtered query
	query := config.StoreGorm.WithContext(ctx).Model(&models.Product{})

	if filter.CollectionID != "" {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.UnitPriceGt != nil {
		query = query.Where("unit_price > ?", *filter.UnitPriceGt)
	}
	if filter.UnitPriceLt != nil {
		query = query.Where("unit_price < ?", *filter.UnitPriceLt)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	// Step 3: Count before paginating
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[product.list] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 4: Order and page
	order := "title ASC"
	if o, ok := productOrdering[filter.Ordering]; ok {
		order = o
	}

	var products []models.Product
	if err := query.
		Order(order).
		Order("id ASC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&products).Error; err != nil {
		log.Printf("[product.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", responses, utils.BuildMeta(page, limit, total)))
}
