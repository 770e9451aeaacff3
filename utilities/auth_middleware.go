package utilities

import (
	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the provider's access token between requests.
const SessionCookieName = "auth-token"

// IdentityMiddleware resolves the session cookie, when present and valid, into
// user_id/email context values. Requests without a usable cookie pass through
// untouched; anonymous access stays allowed everywhere.
func IdentityMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := ValidateSessionToken(token, jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}
