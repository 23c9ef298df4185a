package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/hxudev/currency_exchange_api/internal/dto"
)

// NewIPRateLimiter builds an in-memory limiter with the given window.
func NewIPRateLimiter(period limiter.Rate) *limiter.Limiter {
	return limiter.New(memory.NewStore(), period)
}

// RateLimit creates a Gin middleware that limits requests per client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		context, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context",
				slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.APIResponse{
				Success:   false,
				Message:   "Internal server error during rate limit check",
				ErrorCode: "INTERNAL_ERROR",
			})
			return
		}

		if context.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded",
				slog.String("ip", ip), slog.Int64("limit", context.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.APIResponse{
				Success:   false,
				Message:   "Too many requests. Please try again later.",
				ErrorCode: "RATE_LIMIT_EXCEEDED",
			})
			return
		}

		c.Next()
	}
}
