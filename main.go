// @title Storefront API
// @version 1.0
// @description Store backend: products, collections, reviews, carts, customers and orders
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	_ "github.com/Modeva-Ecommerce/storefront-api/docs"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/routes"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	settings := config.LoadSettings()
	if settings.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	if err := models.AutoMigrate(config.StoreGorm); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	jwtTTL, err := time.ParseDuration(config.GetEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		log.Fatalf("❌ invalid JWT_EXPIRY: %v", err)
	}
	if err := services.InitJWTService(jwtSecret, jwtTTL); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	utils.RegisterValidators()

	router := routes.SetupRouter(settings)

	log.Printf("🚀 Server is running on http://localhost:%s", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
