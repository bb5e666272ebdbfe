package models

// ProductFilter is bound from the product list query string.
type ProductFilter struct {
	CollectionID string  `form:"collection_id" binding:"omitempty,uuid"`
	UnitPriceGt  *string `form:"unit_price__gt" binding:"omitempty,numeric"`
	UnitPriceLt  *string `form:"unit_price__lt" binding:"omitempty,numeric"`
	Search       string  `form:"search"`
	Ordering     string  `form:"ordering" binding:"omitempty,oneof=unit_price -unit_price last_update -last_update"`
	Page         int     `form:"page"`
	Limit        int     `form:"limit"`
}
