package handler

import (
	"github.com/gin-gonic/gin"

	"jokehub/src/app/http/dto"
	"jokehub/src/app/http/response"
	"jokehub/src/app/middleware"
	"jokehub/src/core/usecase"
)

// UserHandler handles profile endpoints for the authenticated user.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's profile.
// GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.UserFromDomain(user, true))
}

// UpdateMe updates the caller's profile.
// PUT /v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), req.DisplayName, req.AvatarURL, req.Email)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.UserFromDomain(user, true))
}

// DeleteMe removes the caller's account and all their jokes.
// DELETE /v1/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.NoContent(c)
}
