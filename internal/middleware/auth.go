package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// Auth validates the bearer token and stores the caller's identity in
// the request context. Every identity downstream comes from here, not
// from request bodies.
func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Fail("Authentication required", nil),
			)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Fail("Invalid or expired token", nil),
			)
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated caller's id, empty when the route
// is not behind Auth.
func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

// WithUserID injects an identity directly, for handler tests.
func WithUserID(id string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(userIDKey, id)
		c.Next()
	}
}
