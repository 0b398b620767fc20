package middleware

import (
	"errors"
	"net/http"
	"strings"

	"postboard/internal/auth"
	"postboard/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key the resolved user ID is stored
// under for downstream handlers.
const ContextUserIDKey = "user_id"

// AuthMiddleware 验证 Bearer token 是否有效，并将用户 ID 写入上下文。
// Every rejection is a plain 401; the reason only feeds metrics.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			metrics.IncAuthRejection("missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(token)
		if err != nil {
			metrics.IncAuthRejection(rejectionReason(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}

// UserID 从上下文取出网关写入的用户 ID
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
