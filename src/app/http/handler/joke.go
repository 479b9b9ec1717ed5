package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jokehub/src/app/http/dto"
	"jokehub/src/app/http/response"
	"jokehub/src/app/middleware"
	"jokehub/src/core/usecase"
)

// JokeHandler handles joke endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// parseJokeID extracts the joke_id path parameter. On failure it writes a
// 400 response and returns false.
func parseJokeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid joke id", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// Create authors a new joke for the authenticated user.
// POST /v1/jokes
func (h *JokeHandler) Create(c *gin.Context) {
	var req dto.CreateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), middleware.GetUserID(c), req.Question, req.Answer)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, dto.JokeFromDomain(joke))
}

// Get returns a single joke.
// GET /v1/jokes/:joke_id
func (h *JokeHandler) Get(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}

	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}

// List returns jokes, newest first. Supports author, limit, offset query params.
// GET /v1/jokes
func (h *JokeHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jokes, err := h.jokeService.List(c.Request.Context(), c.Query("author"), limit, offset)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokesFromDomain(jokes))
}

// Update replaces a joke's question and answer. Author only.
// PUT /v1/jokes/:joke_id
func (h *JokeHandler) Update(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}

	var req dto.UpdateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	joke, err := h.jokeService.Update(c.Request.Context(), middleware.GetUserID(c), id, req.Question, req.Answer)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}

// Delete removes a joke. Author only.
// DELETE /v1/jokes/:joke_id
func (h *JokeHandler) Delete(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}

	if err := h.jokeService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.NoContent(c)
}

// Like increments a joke's like counter.
// POST /v1/jokes/:joke_id/like
func (h *JokeHandler) Like(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}

	joke, err := h.jokeService.Like(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}

// Unlike decrements a joke's like counter.
// DELETE /v1/jokes/:joke_id/like
func (h *JokeHandler) Unlike(c *gin.Context) {
	id, ok := parseJokeID(c)
	if !ok {
		return
	}

	joke, err := h.jokeService.Unlike(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.JokeFromDomain(joke))
}
