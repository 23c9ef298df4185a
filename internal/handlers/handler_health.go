package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// healthHandler reports service liveness and database reachability.
type healthHandler struct {
	dbPool *pgxpool.Pool
}

func newHealthHandler(dbPool *pgxpool.Pool) *healthHandler {
	return &healthHandler{dbPool: dbPool}
}

// health godoc
// @Summary Health check
// @Description Reports process liveness and database reachability. The
// payload is not enveloped so probes can parse it directly.
// Shape: {status, services:{database}}.
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.dbPool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "DEGRADED",
			"services": gin.H{"database": "unreachable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"services": gin.H{"database": "reachable"},
	})
}
