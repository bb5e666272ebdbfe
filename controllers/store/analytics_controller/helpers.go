package analytics_controller

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	defaultWindowDays = 30
	defaultTopLimit   = 6
)

// bindWindow reads ?days and ?limit, answering 400 on bad input.
func bindWindow(c *gin.Context) (since time.Time, limit int, ok bool) {
	var window models.AnalyticsWindow
	if err := c.ShouldBindQuery(&window); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, utils.FieldErrors(err)))
		return time.Time{}, 0, false
	}

	days := window.Days
	if days == 0 {
		days = defaultWindowDays
	}
	limit = window.Limit
	if limit == 0 {
		limit = defaultTopLimit
	}
	return time.Now().UTC().AddDate(0, 0, -days), limit, true
}

func percentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
