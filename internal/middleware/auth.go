package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils"
)

// SessionGate creates a Gin middleware that authenticates every request on
// the protected group. The session cookie is the primary credential; a Bearer
// JWT in the Authorization header is accepted as a fallback for API clients.
// Anonymous requests are rejected before any entity handler runs.
func SessionGate(sessionSvc portssvc.SessionSvcFacade, cookieName, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if sessionID, err := c.Cookie(cookieName); err == nil && sessionID != "" {
			session, err := sessionSvc.ValidateSession(c.Request.Context(), sessionID)
			if err != nil {
				if errors.Is(err, apperrors.ErrSessionExpired) {
					logger.Info("Session expired", "session_id", sessionID)
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has expired"})
					return
				}
				logger.Warn("Session validation failed", "error", err.Error())
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
				return
			}
			setAuthenticatedUser(c, session.Username)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("No session cookie or authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Invalid token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if claims.Subject == "" {
			logger.Error("Username (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		setAuthenticatedUser(c, claims.Subject)
		c.Next()
	}
}
