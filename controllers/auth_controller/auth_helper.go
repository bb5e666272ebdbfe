package auth_controller

import (
	"os"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
)

const authCookieMaxAge = 24 * 60 * 60

// issueToken signs a token for user and mirrors it into the auth_token cookie.
func issueToken(c *gin.Context, user *models.User) (string, error) {
	token, err := services.GenerateUserJWT(user.ID.String(), user.Email, user.IsStaff)
	if err != nil {
		return "", err
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie("auth_token", token, authCookieMaxAge, "/", "", isProd, true)

	return token, nil
}
