package auth_controller

import (
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

// Register godoc
// @Summary Register an account
// @Description Creates the user with a bronze customer profile and returns a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body models.RegisterRequest true "Account"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.RegisterRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Email must be free
	var existing int64
	if err := config.StoreGorm.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		log.Printf("[auth.register] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"email": "user with this email already exists.",
		}))
		return
	}

	// Step 3: Hash password
	hash, err := services.HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	// Step 4: User and customer profile together
	user := models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Permissions:  models.PermissionList{},
	}
	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		_, err := services.GetOrCreateCustomer(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		log.Printf("[auth.register] failed to create account: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	// Step 5: Token
	token, err := issueToken(c, &user)
	if err != nil {
		log.Printf("[auth.register] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	log.Printf("[auth.register] user %s registered", user.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
