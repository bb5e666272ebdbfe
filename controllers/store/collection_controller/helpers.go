package collection_controller

import (
	"context"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"gorm.io/gorm"
)

// collectionsWithCounts annotates each collection with products_count.
func collectionsWithCounts(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]models.CollectionWithCount, error) {
	query := config.StoreGorm.WithContext(ctx).
		Table("collections").
		Select("collections.id, collections.title, collections.featured_product_id, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.collection_id = collections.id").
		Group("collections.id, collections.title, collections.featured_product_id")
	if scope != nil {
		query = scope(query)
	}

	var rows []models.CollectionWithCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// validFeaturedProduct reports whether the optional featured product exists.
func validFeaturedProduct(ctx context.Context, req *models.CollectionRequest) (bool, error) {
	if req.FeaturedProductID == nil {
		return true, nil
	}
	var count int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", *req.FeaturedProductID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
