package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetDeviceAnalytics godoc
// @Summary Get login device analytics
// @Description Login distribution by device type (desktop, mobile, tablet) over the window
// @Tags Store - Analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} models.ApiResponse{data=[]models.DeviceAnalytics}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/analytics/devices [get]
func GetDeviceAnalytics(c *gin.Context) {
	since, _, ok := bindWindow(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deviceData := make([]models.DeviceAnalytics, 0, 3)
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.LoginEvent{}).
		Where("logged_in_at >= ?", since).
		Select("COALESCE(NULLIF(device_type, ''), 'desktop') AS device_type, COUNT(id) AS login_count").
		Group("COALESCE(NULLIF(device_type, ''), 'desktop')").
		Order("login_count DESC").
		Scan(&deviceData).Error; err != nil {
		log.Printf("[analytics.devices] ERROR query device analytics err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch device analytics"))
		return
	}

	var total int
	for _, d := range deviceData {
		total += d.LoginCount
	}
	for i := range deviceData {
		deviceData[i].Percentage = percentOf(float64(deviceData[i].LoginCount), float64(total))
	}

	log.Printf("[analytics.devices] respond 200 devices=%d total_logins=%d", len(deviceData), total)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device analytics retrieved successfully", deviceData))
}
