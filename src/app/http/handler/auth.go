package handler

import (
	"github.com/gin-gonic/gin"

	"jokehub/src/app/http/dto"
	"jokehub/src/app/http/response"
	"jokehub/src/app/middleware"
	"jokehub/src/core/usecase"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	userService *usecase.UserService
}

func NewAuthHandler(userService *usecase.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register creates an account and returns a session.
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	session, err := h.userService.Register(c.Request.Context(), req.DisplayName, req.Email, req.Password, req.AvatarURL)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, dto.SessionFromDomain(session))
}

// Login verifies credentials and returns a session.
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	session, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.SessionFromDomain(session))
}
