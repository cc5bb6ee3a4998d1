// README: JWT auth middleware; resolves the bearer token into a caller.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gari/internal/infra"
	"gari/internal/types"
)

const callerKey = "caller"

// Auth rejects requests without a valid bearer token. On success the request
// caller is stored in the gin context for handlers to read via Caller.
// Tokens carrying the "admin" role yield a privileged caller.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerKey, types.Caller{
			UserID:     types.ID(token.UID),
			Privileged: token.Role == "admin",
		})
		c.Next()
	}
}

// Caller returns the authenticated caller, or the zero value on routes that
// skipped Auth.
func Caller(c *gin.Context) types.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return types.Caller{}
	}
	caller, _ := v.(types.Caller)
	return caller
}
