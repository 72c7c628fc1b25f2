package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// usernameKey is the key used to store the authenticated username in the
// context. Using a custom type prevents collisions.
const usernameKey = contextKey("username")

// setAuthenticatedUser stores the username in the request context and
// enriches the request-scoped logger with it.
func setAuthenticatedUser(c *gin.Context, username string) {
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("username", username))

	ctx := context.WithValue(c.Request.Context(), usernameKey, username)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(usernameKey), username)
	c.Set(string(loggerKey), logger)
}

// GetUserFromContext retrieves the authenticated username from the Gin context.
// It returns the username and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (string, bool) {
	usernameVal, exists := c.Get(string(usernameKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(usernameKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	username, ok := usernameVal.(string)
	if !ok {
		return "", false
	}

	return username, true
}
