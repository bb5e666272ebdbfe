package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// requireStaff aborts with 403 unless the authenticated caller is staff.
func requireStaff(c *gin.Context) bool {
	if IsStaff(c) {
		return true
	}
	email, _ := GetUserEmailFromContext(c)
	log.Printf("[auth] non-staff user %s attempted restricted action %s %s", email, c.Request.Method, c.FullPath())
	c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You do not have permission to perform this action"))
	c.Abort()
	return false
}

// RequireStaff checks the authenticated caller is staff.
// Must be used AFTER AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireStaff(c) {
			return
		}
		c.Next()
	}
}

// RequirePermission loads the caller and checks they hold perm (staff hold
// every permission). Must be used AFTER AuthMiddleware.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication credentials were not provided"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		if err := config.StoreGorm.WithContext(ctx).
			Select("id", "is_staff", "permissions").
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
				c.Abort()
				return
			}
			log.Printf("[auth] failed to fetch user permissions: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			c.Abort()
			return
		}

		if !user.HasPerm(perm) {
			log.Printf("[auth] user %s lacks permission %s", userID, perm)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You do not have permission to perform this action"))
			c.Abort()
			return
		}

		c.Next()
	}
}
