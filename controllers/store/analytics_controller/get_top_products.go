package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetTopProducts godoc
// @Summary Get top selling products
// @Description Best sellers among completed orders in the window, by revenue at checkout prices
// @Tags Store - Analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days" default(30)
// @Param limit query int false "Number of products" default(6)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	since, limit, ok := bindWindow(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// ================================
	// Total revenue in the window (for percentages)
	// ================================
	var totalRevenue float64
	if err := config.StoreGorm.WithContext(ctx).
		Table("order_items AS oi").
		Joins("INNER JOIN orders o ON oi.order_id = o.id").
		Where("o.payment_status = ? AND o.placed_at >= ?", models.PaymentStatusComplete, since).
		Select("COALESCE(SUM(oi.unit_price * oi.quantity), 0)").
		Scan(&totalRevenue).Error; err != nil {
		log.Printf("[analytics.top-products] ERROR total revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	// ================================
	// Best sellers
	// ================================
	topProducts := make([]models.TopProduct, 0, limit)
	if err := config.StoreGorm.WithContext(ctx).
		Table("order_items AS oi").
		Joins("INNER JOIN orders o ON oi.order_id = o.id").
		Joins("INNER JOIN products p ON oi.product_id = p.id").
		Where("o.payment_status = ? AND o.placed_at >= ?", models.PaymentStatusComplete, since).
		Select(`oi.product_id AS product_id,
			p.title AS product_title,
			COUNT(DISTINCT oi.order_id) AS order_count,
			SUM(oi.quantity) AS sales_count,
			SUM(oi.unit_price * oi.quantity) AS revenue`).
		Group("oi.product_id, p.title").
		Order("revenue DESC").
		Limit(limit).
		Scan(&topProducts).Error; err != nil {
		log.Printf("[analytics.top-products] ERROR query top products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	for i := range topProducts {
		topProducts[i].RevenuePercent = percentOf(topProducts[i].Revenue, totalRevenue)
	}

	log.Printf("[analytics.top-products] respond 200 products=%d total_revenue=%.2f", len(topProducts), totalRevenue)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", topProducts))
}
