package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"repair-tracker/internal/core/auth"
	"repair-tracker/internal/transport/http/response"
)

const keyUserID = "userID"

// AuthJWT rejects the request before any store is touched when the bearer
// token is missing, malformed, or fails verification.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortErr(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(keyUserID, claims.UID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id set by AuthJWT.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(keyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
