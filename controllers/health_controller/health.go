package health_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
)

const (
	statusUp            = "up"
	statusDown          = "down"
	statusNotConfigured = "not_configured"
)

// Health godoc
// @Summary Service health
// @Description Pings Postgres through the pgx pool and Redis
// @Tags Health
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /health [get]
func Health(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	checks := map[string]string{
		"database": statusNotConfigured,
		"redis":    statusNotConfigured,
	}
	healthy := true

	if config.StoreDB != nil {
		checks["database"] = statusUp
		if err := config.StoreDB.Ping(ctx); err != nil {
			checks["database"] = statusDown
			healthy = false
		}
	}

	if config.RedisClient != nil {
		checks["redis"] = statusUp
		if err := config.RedisClient.Ping(ctx).Err(); err != nil {
			checks["redis"] = statusDown
			healthy = false
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, models.ApiResponse{
			Message: "Service degraded",
			Data:    checks,
			Error:   true,
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "OK", checks))
}
