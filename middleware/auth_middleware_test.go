package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postboard/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", time.Hour)
	r := newProtectedRouter(tokens)

	expired, err := auth.NewTokenManager("mw-secret", -time.Minute).Issue(1)
	require.NoError(t, err)
	tampered, err := auth.NewTokenManager("other-secret", time.Hour).Issue(1)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"malformed token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signature", "Bearer " + tampered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Contains(t, w.Body.String(), "message")
		})
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("mw-secret", time.Hour)
	r := newProtectedRouter(tokens)

	token, err := tokens.Issue(99)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":99`)
}
