package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// AdminAuth guards the admin API with a static bearer token.
// An empty token disables the admin API.
func AdminAuth(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin api is disabled"})
			return
		}

		header := c.GetHeader("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
