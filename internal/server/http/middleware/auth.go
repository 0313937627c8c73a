package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialContextKey is a gin context key for the caller's bearer credential.
// Verification itself happens inside the order service, which is the sole
// authorization boundary; this middleware only rejects requests that carry no
// credential at all.
const CredentialContextKey = "credential"

// CredentialRequired extracts the bearer credential and aborts with 401 when
// it is missing.
func CredentialRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := extractCredential(c)
		if credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		c.Set(CredentialContextKey, credential)
		c.Next()
	}
}

func extractCredential(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
