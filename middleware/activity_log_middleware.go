package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps route segments to resource types
var pathToResourceType = map[string]string{
	"products":    models.ResourceTypeProduct,
	"collections": models.ResourceTypeCollection,
	"reviews":     models.ResourceTypeReview,
	"customers":   models.ResourceTypeCustomer,
	"orders":      models.ResourceTypeOrder,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records staff writes to store resources.
// Must be used AFTER AuthMiddleware (which sets the caller).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" || !IsStaff(c) {
			c.Next()
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Next()
			return
		}
		userEmail, _ := GetUserEmailFromContext(c)

		resourceType, idParam := resolveResource(c.FullPath())
		if resourceType == "" {
			c.Next()
			return
		}

		resourceID := ""
		if idParam != "" {
			resourceID = c.Param(idParam)
		}

		// e.g. "created_product", "deleted_collection"
		action := actionVerb + "_" + resourceType

		// Snapshot before the handler runs (updates and deletes only)
		var before interface{}
		if c.Request.Method != http.MethodPost && resourceID != "" {
			before = fetchResourceFromDB(resourceType, resourceID)
		}

		c.Next()

		statusCode := c.Writer.Status()
		req := services.LogActivityRequest{
			UserID:       userID,
			UserEmail:    userEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			StatusCode:   statusCode,
			Context:      c,
		}

		if statusCode >= 200 && statusCode < 300 {
			req.Status = models.StatusSuccess
			req.Changes = services.CreateChanges(before)
			log.Printf("[activity-logging] success: %s by %s", action, userEmail)
		} else {
			req.Status = models.StatusFailed
			req.ErrorMessage = "Request failed with status " + http.StatusText(statusCode)
			log.Printf("[activity-logging] failed: %s by %s - status %d", action, userEmail, statusCode)
		}

		services.LogActivity(req)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// resolveResource finds the innermost known resource in a route template and
// the name of the path parameter that identifies it.
// "/api/v1/store/products/:id/reviews/:review_id" → ("review", "review_id")
func resolveResource(fullPath string) (resourceType, idParam string) {
	parts := strings.Split(fullPath, "/")

	for i := len(parts) - 1; i >= 0; i-- {
		rt, ok := pathToResourceType[parts[i]]
		if !ok {
			continue
		}
		if i+1 < len(parts) && strings.HasPrefix(parts[i+1], ":") {
			return rt, strings.TrimPrefix(parts[i+1], ":")
		}
		return rt, ""
	}

	return "", ""
}

// fetchResourceFromDB loads the current state of a resource for the log
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var target interface{}
	switch resourceType {
	case models.ResourceTypeProduct:
		target = &models.Product{}
	case models.ResourceTypeCollection:
		target = &models.Collection{}
	case models.ResourceTypeReview:
		target = &models.Review{}
	case models.ResourceTypeCustomer:
		target = &models.Customer{}
	case models.ResourceTypeOrder:
		target = &models.Order{}
	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}

	if err := config.StoreGorm.WithContext(ctx).First(target, "id = ?", resourceID).Error; err != nil {
		log.Printf("[activity-logging] failed to fetch %s %s: %v", resourceType, resourceID, err)
		return nil
	}
	return target
}
