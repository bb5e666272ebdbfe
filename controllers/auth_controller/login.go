package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if !services.VerifyPassword(user.PasswordHash, req.Password) {
		log.Printf("[auth.login] bad password for %s", user.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := issueToken(c, &user)
	if err != nil {
		log.Printf("[auth.login] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	// Login history is best effort
	_ = utils.RecordLogin(ctx, c, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
