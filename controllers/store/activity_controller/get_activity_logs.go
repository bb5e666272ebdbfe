package activity_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivityLogs godoc
// @Summary List staff activity
// @Description Audit trail of staff writes, newest first
// @Tags Store - Activity
// @Produce json
// @Security BearerAuth
// @Param resource_type query string false "product, collection, review, customer or order"
// @Param user_id query string false "Staff user ID"
// @Param status query string false "success or failed"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/store/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.StoreGorm.WithContext(ctx).Model(&models.ActivityLog{})

	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"user_id": "Must be a valid UUID.",
			}))
			return
		}
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[activity.list] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var logs []models.ActivityLog
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&logs).Error; err != nil {
		log.Printf("[activity.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	responses := make([]models.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", responses, utils.BuildMeta(page, limit, total)))
}
