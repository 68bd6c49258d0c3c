package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skorolev/taskkeeper/internal/server/auth"
)

const (
	claimsContextKey    = "identity"
	requestIDContextKey = "request_id"
)

// requestIDMiddleware tags every request with a generated id so log lines
// from one request can be correlated.
func (s *HTTPServer) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// requireAuth is the authorization gate for protected routes. It extracts the
// bearer token from the Authorization header, verifies it, and stores the
// resolved claims in the request context. Any failure aborts with 401; there
// is no retry within a request, the client must log in again.
func (s *HTTPServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret, s.jwtAlg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// claimsFromContext returns the identity stored by requireAuth. The bool is
// false only if a handler was wired without the middleware, which is a
// routing bug.
func claimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
