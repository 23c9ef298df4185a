package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// parseIDParam reads the :id path parameter as a positive integer. On
// failure it writes the validation response and returns ok=false.
func parseIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "id",
			Message: "must be a positive integer",
			Value:   raw,
		}})
		return 0, false
	}
	return id, true
}

// parseExcludeID reads the optional excludeId query parameter; 0 means none.
func parseExcludeID(c *gin.Context) int64 {
	raw := c.Query("excludeId")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
