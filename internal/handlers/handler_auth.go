package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/middleware"
)

// authHandler handles authentication requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{
		authService: as,
	}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.POST("/auth/login", h.login)
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "User credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", slog.String("user_name", req.UserName))
		respondError(c, err)
		return
	}

	logger.Info("Login succeeded", slog.Int64("user_id", resp.User.ID))
	respondData(c, http.StatusOK, resp)
}
