package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jokehub/src/app/http/response"
	"jokehub/src/core/ports"
)

// UserIDKey is the context key under which Auth stores the caller's user id.
const UserIDKey = "user_id"

// Auth enforces that the request carries a valid bearer token.
// On success it stores the token's user id in the context under UserIDKey.
func Auth(tokens ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing Authorization header", requestID)
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "Authorization header must be a bearer token", requestID)
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token", requestID)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}

// GetUserID retrieves the authenticated user id from the Gin context.
// Returns empty string if the request was not authenticated.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
