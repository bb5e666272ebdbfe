package services

import (
	"encoding/json"
	"log"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogActivityRequest contains the parameters for logging a staff action
type LogActivityRequest struct {
	UserID       uuid.UUID              // Who performed the action
	UserEmail    string                 // Their email at the time
	Action       string                 // created_product, deleted_collection, ...
	ResourceType string                 // models.ResourceType*
	ResourceID   string                 // Path id of the resource, empty on create
	Changes      map[string]interface{} // {before: {...}}
	Status       string                 // models.StatusSuccess or models.StatusFailed
	StatusCode   int
	ErrorMessage string
	Context      *gin.Context // For IP and User-Agent extraction
}

// LogActivity writes an activity_logs row. Failures are only logged.
func LogActivity(req LogActivityRequest) {
	if req.UserID == uuid.Nil {
		log.Printf("[activity-log] warning: user id is nil for action %s", req.Action)
		return
	}
	if config.StoreGorm == nil {
		return
	}

	var ipAddress, userAgent string
	if req.Context != nil {
		ipAddress = utils.GetClientIP(req.Context)
		userAgent = req.Context.GetHeader("User-Agent")
	}

	changesJSON := []byte("{}")
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
		} else {
			changesJSON = data
		}
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Changes:      datatypes.JSON(changesJSON),
		Status:       req.Status,
		StatusCode:   req.StatusCode,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		return
	}

	log.Printf("[activity-log] %s: %s/%s by %s", req.Action, req.ResourceType, req.ResourceID, req.UserEmail)
}

// CreateChanges builds the changes payload stored with a log entry
func CreateChanges(before interface{}) map[string]interface{} {
	return map[string]interface{}{
		"before": before,
	}
}
