package middlewares

import (
	"net/http"
	"strings"

	"form-relay-api/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	MissingAuthMessage = "Missing or invalid authorization header. Expected: Bearer <token>"
	InvalidAuthMessage = "Invalid authorization token"
)

// AuthMiddleware requires "Authorization: Bearer <token>" matching the shared secret,
// or matching tokenHash (bcrypt) when one is configured.
func AuthMiddleware(token, tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, MissingAuthMessage)
			return
		}

		presented := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if presented == "" {
			abortUnauthorized(c, MissingAuthMessage)
			return
		}

		if !tokenMatches(presented, token, tokenHash) {
			abortUnauthorized(c, InvalidAuthMessage)
			return
		}

		c.Next()
	}
}

func tokenMatches(presented, token, tokenHash string) bool {
	if tokenHash != "" {
		return util.VerifyToken(presented, tokenHash) == nil
	}
	if token == "" {
		return false
	}
	return util.TokensEqual(presented, token)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": message,
	})
}
