package auth_routes

import (
	"github.com/Modeva-Ecommerce/storefront-api/controllers/auth_controller"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", middleware.AuthMiddleware(), auth_controller.Logout)
	}
}
