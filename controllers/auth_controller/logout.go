package auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Revokes the presented token (when Redis is configured) and clears the auth_token cookie
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	if claims, ok := middleware.GetClaimsFromContext(c); ok && claims.ExpiresAt != nil {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := services.GetSessionService().RevokeToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			log.Printf("[auth.logout] failed to revoke token for %s: %v", claims.Email, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log out"))
			return
		}
	}

	isProd := os.Getenv("APP_ENV") == "production"
	// must match name, path, domain, secure, httpOnly used when set
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
