package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/dto"
	"github.com/hxudev/currency_exchange_api/internal/middleware"
	"github.com/hxudev/currency_exchange_api/internal/platform/config"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers routes related to users. Registration stays
// public so the first user can be created; mutations require a token.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUserByID)
		users.POST("", h.createUser)
	}

	guarded := rg.Group("/users", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		guarded.PUT("/:id", h.updateUser)
		guarded.DELETE("/:id", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List users
// @Description Retrieves users; a name parameter performs an exact-match lookup
// @Tags users
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Param   name query string false "Exact user name to look up"
// @Success 200 {object} dto.APIResponse{data=dto.ListUsersResponse}
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListUsers", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(params, err))
		return
	}

	if name := strings.TrimSpace(params.Name); name != "" {
		user, err := h.userService.GetUserByName(c.Request.Context(), name)
		if err != nil {
			logger.Warn("Failed to find user by name", slog.String("error", err.Error()))
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, dto.ListUsersResponse{Users: []dto.UserResponse{dto.ToUserResponse(user)}})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users from service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToListUserResponse(users))
}

// getUserByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id} [get]
func (h *userHandler) getUserByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Warn("Failed to get user", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToUserResponse(user))
}

// createUser godoc
// @Summary Register a new user
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 409 {object} dto.APIResponse "Name or email already taken"
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}

	logger.Info("Received request to create user", slog.String("user_name", req.UserName))

	createdUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create user in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("User created successfully", slog.Int64("user_id", createdUser.UserID))
	respondCreated(c, dto.ToUserResponse(createdUser), "User created successfully")
}

// updateUser godoc
// @Summary Update a user
// @Description Applies a partial update; a supplied password is re-hashed
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateUser", slog.String("error", err.Error()))
		respondValidationDetails(c, validationDetails(req, err))
		return
	}
	if req.UserName == nil && req.UserEmail == nil && req.UserPassword == nil {
		respondValidationDetails(c, []dto.ValidationErrorDetail{{
			Field:   "body",
			Message: "at least one of user_name, user_email or user_password must be provided",
		}})
		return
	}

	updatedUser, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to update user in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("User updated successfully")
	respondData(c, http.StatusOK, dto.ToUserResponse(updatedUser))
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		logger.Warn("Failed to delete user in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("User deleted successfully")
	respondMessage(c, http.StatusOK, "User deleted successfully")
}
