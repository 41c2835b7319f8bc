package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecretVerifier validates a presented admin credential.
type SecretVerifier interface {
	Verify(candidate string) bool
}

// AdminRequired gates admin-only endpoints behind the shared bearer secret.
func AdminRequired(verifier SecretVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := extractBearer(c)
		if secret == "" || !verifier.Verify(secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
