package utils

import (
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a UUID path parameter, answering 400 when malformed.
func ParseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+label+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// BindJSON binds and validates the body, answering 400 with per-field
// messages on failure.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, FieldErrors(err)))
		return false
	}
	return true
}
